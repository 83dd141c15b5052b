package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type partnerPayload struct {
	contentPayload
	WebsiteURL string `json:"website_url"`
}

func (p partnerPayload) toInput() service.PartnerInput {
	return service.PartnerInput{
		ContentInput: p.contentPayload.toInput(),
		WebsiteURL:   p.WebsiteURL,
	}
}

// GetPartners lists all partners for the admin UI.
func (a *API) GetPartners(c *gin.Context) {
	partners, err := a.partners.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load partners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// CreatePartner creates a partner from the admin form.
func (a *API) CreatePartner(c *gin.Context) {
	var payload partnerPayload
	if !bindJSON(c, &payload, "invalid partner payload") {
		return
	}

	partner, err := a.partners.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "name is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create partner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"partner": partner})
}

// UpdatePartner updates a partner from the admin form.
func (a *API) UpdatePartner(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload partnerPayload
	if !bindJSON(c, &payload, "invalid partner payload") {
		return
	}

	partner, err := a.partners.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartnerNotFound):
			respondError(c, http.StatusNotFound, "partner not found")
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update partner")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// DeletePartner removes a partner from the admin list view.
func (a *API) DeletePartner(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.partners.Delete(id); err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			respondError(c, http.StatusNotFound, "partner not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete partner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "partner deleted"})
}
