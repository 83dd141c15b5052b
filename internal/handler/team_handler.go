package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type teamMemberPayload struct {
	contentPayload
	Position    string `json:"position"`
	Bio         string `json:"bio"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedin_url"`
}

func (p teamMemberPayload) toInput() service.TeamMemberInput {
	return service.TeamMemberInput{
		ContentInput: p.contentPayload.toInput(),
		Position:     p.Position,
		Bio:          p.Bio,
		Email:        p.Email,
		LinkedInURL:  p.LinkedInURL,
	}
}

// GetTeamMembers lists all team members for the admin UI.
func (a *API) GetTeamMembers(c *gin.Context) {
	members, err := a.team.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load team members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": members})
}

// CreateTeamMember creates a team member from the admin form.
func (a *API) CreateTeamMember(c *gin.Context) {
	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	member, err := a.team.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "name is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team_member": member})
}

// UpdateTeamMember updates a team member from the admin form.
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	member, err := a.team.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			respondError(c, http.StatusNotFound, "team member not found")
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update team member")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_member": member})
}

// DeleteTeamMember removes a team member from the admin list view.
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.team.Delete(id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "team member not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}
