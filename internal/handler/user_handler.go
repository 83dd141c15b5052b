package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/service"
)

type assignRolesPayload struct {
	Roles []string `json:"roles"`
}

// GetUsers lists admin accounts with their roles.
func (a *API) GetUsers(c *gin.Context) {
	var users []db.User
	if err := a.db.Preload("Roles").Order("id asc").Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load users")
		return
	}

	views := make([]gin.H, 0, len(users))
	for _, user := range users {
		roles := make([]string, 0, len(user.Roles))
		for _, role := range user.Roles {
			roles = append(roles, role.Name)
		}
		views = append(views, gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"email":        user.Email,
			"roles":        roles,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

// AssignUserRoles replaces a user's role set.
func (a *API) AssignUserRoles(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload assignRolesPayload
	if !bindJSON(c, &payload, "invalid roles payload") {
		return
	}

	if err := a.roles.AssignRoles(id, payload.Roles); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrRoleNotFound):
			respondError(c, http.StatusBadRequest, "unknown role")
		default:
			respondError(c, http.StatusInternalServerError, "failed to assign roles")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "roles updated"})
}
