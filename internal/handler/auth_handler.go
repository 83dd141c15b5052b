package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin account and starts a session.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	roles, err := a.roles.UserRoles(user.ID)
	if err != nil {
		roles = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"roles":        roles,
		},
	})
}

// Logout clears the current session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated account with its roles.
func (a *API) Me(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var user db.User
	if err := a.db.Preload("Roles").First(&user, userID).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "account no longer exists")
		return
	}

	roleNames := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roleNames = append(roleNames, role.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"email":        user.Email,
		"roles":        roleNames,
	})
}

// AuthRequired rejects requests without an authenticated session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission rejects authenticated requests whose account lacks the
// named permission.
func (a *API) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		allowed, err := a.roles.UserHasPermission(userID, permission)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to check permissions")
			c.Abort()
			return
		}
		if !allowed {
			respondError(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
