package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type insightPayload struct {
	contentPayload
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	PublishedAt *time.Time `json:"published_at"`
}

func (p insightPayload) toInput() service.InsightInput {
	return service.InsightInput{
		ContentInput: p.contentPayload.toInput(),
		Type:         p.Type,
		Status:       p.Status,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		PublishedAt:  p.PublishedAt,
	}
}

// GetInsights lists insights for the admin UI with optional filters.
func (a *API) GetInsights(c *gin.Context) {
	insights, err := a.insights.List(service.InsightFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load insights")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GetInsight fetches one insight for the admin editor.
func (a *API) GetInsight(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	insight, err := a.insights.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrInsightNotFound) {
			respondError(c, http.StatusNotFound, "insight not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load insight")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// CreateInsight creates an insight from the admin form.
func (a *API) CreateInsight(c *gin.Context) {
	var payload insightPayload
	if !bindJSON(c, &payload, "invalid insight payload") {
		return
	}

	insight, err := a.insights.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		respondInsightError(c, err, "failed to create insight")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insight": insight})
}

// UpdateInsight updates an insight from the admin form.
func (a *API) UpdateInsight(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload insightPayload
	if !bindJSON(c, &payload, "invalid insight payload") {
		return
	}

	insight, err := a.insights.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		respondInsightError(c, err, "failed to update insight")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// DeleteInsight removes an insight from the admin list view.
func (a *API) DeleteInsight(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.insights.Delete(id); err != nil {
		if errors.Is(err, service.ErrInsightNotFound) {
			respondError(c, http.StatusNotFound, "insight not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete insight")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "insight deleted"})
}

func respondInsightError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInsightNotFound):
		respondError(c, http.StatusNotFound, "insight not found")
	case errors.Is(err, service.ErrTitleRequired):
		respondError(c, http.StatusBadRequest, "title is required")
	case errors.Is(err, service.ErrInsightTypeInvalid):
		respondError(c, http.StatusBadRequest, "insight type is invalid")
	case errors.Is(err, service.ErrInsightStatusInvalid):
		respondError(c, http.StatusBadRequest, "insight status is invalid")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
