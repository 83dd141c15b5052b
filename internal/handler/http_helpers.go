package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated account id from the session, or
// zero when the request is unauthenticated.
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	raw := session.Get(sessionKeyUserID)
	if raw == nil {
		return 0
	}
	switch id := raw.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	default:
		return 0
	}
}
