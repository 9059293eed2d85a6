package handlers

import (
	"net/http"

	"recipe-planner-api/middleware"

	"github.com/gin-gonic/gin"
)

// GetActivity returns the caller's audit trail, newest first.
func (h *Handler) GetActivity(c *gin.Context) {
	userID := middleware.GetUserID(c)
	entries, err := h.Store.GetActivityLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "activity": entries})
}
