package handlers

import (
	"net/http"
	"strconv"

	"recipe-planner-api/clients"
	"recipe-planner-api/logger"
	"recipe-planner-api/models"
	"recipe-planner-api/store"

	"github.com/gin-gonic/gin"
)

// Handler carries the storage engine and the two external adapters; it
// is built once at boot and shared by all routes.
type Handler struct {
	Store     *store.Store
	Recipes   *clients.RecipeSource
	Nutrition *clients.NutritionClient
}

func New(st *store.Store, recipes *clients.RecipeSource, nutrition *clients.NutritionClient) *Handler {
	return &Handler{Store: st, Recipes: recipes, Nutrition: nutrition}
}

// paramID parses a numeric path parameter, answering 400 itself on bad
// input.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// logActivity appends to the user's audit trail; a failed append is
// logged and otherwise ignored so it never fails the main operation.
func (h *Handler) logActivity(userID uint, action string, entityID uint, entityType, details string) {
	entry := models.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		Details:    details,
	}
	if entityID != 0 {
		entry.EntityID = &entityID
	}
	if err := h.Store.CreateActivityLog(&entry); err != nil {
		logger.Warn("failed to record activity", "action", action, "user_id", userID, "error", err)
	}
}
