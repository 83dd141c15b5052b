package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type solutionPayload struct {
	contentPayload
	Summary string `json:"summary"`
}

func (p solutionPayload) toInput() service.SolutionInput {
	return service.SolutionInput{
		ContentInput: p.contentPayload.toInput(),
		Summary:      p.Summary,
	}
}

// GetSolutions lists all solutions for the admin UI.
func (a *API) GetSolutions(c *gin.Context) {
	solutions, err := a.solutions.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load solutions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"solutions": solutions})
}

// CreateSolution creates a solution from the admin form.
func (a *API) CreateSolution(c *gin.Context) {
	var payload solutionPayload
	if !bindJSON(c, &payload, "invalid solution payload") {
		return
	}

	solution, err := a.solutions.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create solution")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"solution": solution})
}

// UpdateSolution updates a solution from the admin form.
func (a *API) UpdateSolution(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload solutionPayload
	if !bindJSON(c, &payload, "invalid solution payload") {
		return
	}

	solution, err := a.solutions.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSolutionNotFound):
			respondError(c, http.StatusNotFound, "solution not found")
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update solution")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution": solution})
}

// DeleteSolution removes a solution unless services are still attached.
func (a *API) DeleteSolution(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.solutions.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrSolutionNotFound):
			respondError(c, http.StatusNotFound, "solution not found")
		case errors.Is(err, service.ErrSolutionInUse):
			respondError(c, http.StatusConflict, "solution still has services attached")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete solution")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "solution deleted"})
}
