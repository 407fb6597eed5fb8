package handlers

import (
	"letterpress_ops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// actor names the authenticated caller for log lines.
func actor(c *gin.Context) string {
	userID, err := middleware.GetUserID(c)
	if err != nil || userID == "" {
		return "anonymous"
	}
	return userID
}
