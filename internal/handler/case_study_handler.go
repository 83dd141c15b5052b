package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type caseStudyPayload struct {
	contentPayload
	ClientName string `json:"client_name"`
	Industry   string `json:"industry"`
	Challenge  string `json:"challenge"`
	Approach   string `json:"approach"`
	Results    string `json:"results"`
}

func (p caseStudyPayload) toInput() service.CaseStudyInput {
	return service.CaseStudyInput{
		ContentInput: p.contentPayload.toInput(),
		ClientName:   p.ClientName,
		Industry:     p.Industry,
		Challenge:    p.Challenge,
		Approach:     p.Approach,
		Results:      p.Results,
	}
}

// GetCaseStudies lists all case studies for the admin UI.
func (a *API) GetCaseStudies(c *gin.Context) {
	studies, err := a.caseStudies.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load case studies")
		return
	}
	c.JSON(http.StatusOK, gin.H{"case_studies": studies})
}

// CreateCaseStudy creates a case study from the admin form.
func (a *API) CreateCaseStudy(c *gin.Context) {
	var payload caseStudyPayload
	if !bindJSON(c, &payload, "invalid case study payload") {
		return
	}

	study, err := a.caseStudies.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create case study")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"case_study": study})
}

// UpdateCaseStudy updates a case study from the admin form.
func (a *API) UpdateCaseStudy(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload caseStudyPayload
	if !bindJSON(c, &payload, "invalid case study payload") {
		return
	}

	study, err := a.caseStudies.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaseStudyNotFound):
			respondError(c, http.StatusNotFound, "case study not found")
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update case study")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"case_study": study})
}

// DeleteCaseStudy removes a case study from the admin list view.
func (a *API) DeleteCaseStudy(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.caseStudies.Delete(id); err != nil {
		if errors.Is(err, service.ErrCaseStudyNotFound) {
			respondError(c, http.StatusNotFound, "case study not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete case study")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "case study deleted"})
}
