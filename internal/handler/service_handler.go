package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type contentPayload struct {
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	SortOrder      int    `json:"sort_order"`
	IsActive       *bool  `json:"is_active"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
}

func (p contentPayload) toInput() service.ContentInput {
	return service.ContentInput{
		Title:          p.Title,
		Slug:           p.Slug,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		SortOrder:      p.SortOrder,
		IsActive:       p.IsActive,
		SeoTitle:       p.SeoTitle,
		SeoDescription: p.SeoDescription,
		SeoKeywords:    p.SeoKeywords,
	}
}

type servicePayload struct {
	contentPayload
	Icon       string   `json:"icon"`
	Features   []string `json:"features"`
	SolutionID *uint    `json:"solution_id"`
}

func (p servicePayload) toInput() service.ServiceInput {
	return service.ServiceInput{
		ContentInput: p.contentPayload.toInput(),
		Icon:         p.Icon,
		Features:     p.Features,
		SolutionID:   p.SolutionID,
	}
}

// GetServices lists all services for the admin UI.
func (a *API) GetServices(c *gin.Context) {
	services, err := a.services.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService creates a service from the admin form.
func (a *API) CreateService(c *gin.Context) {
	var payload servicePayload
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	svc, err := a.services.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService updates a service from the admin form.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload servicePayload
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	svc, err := a.services.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, "service not found")
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update service")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService removes a service from the admin list view.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.services.Delete(id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
