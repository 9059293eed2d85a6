package handlers

import (
	"net/http"

	"recipe-planner-api/middleware"
	"recipe-planner-api/models"

	"github.com/gin-gonic/gin"
)

// GetShoppingList returns the caller's list oldest-first, or grouped by
// source recipe with ?grouped=true.
func (h *Handler) GetShoppingList(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if c.Query("grouped") == "true" {
		groups, err := h.Store.GetShoppingListGrouped(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shopping list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(groups), "groups": groups})
		return
	}

	items, err := h.Store.GetShoppingList(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

type AddShoppingItemRequest struct {
	Item                 string `json:"item" binding:"required"`
	Quantity             string `json:"quantity"`
	Unit                 string `json:"unit"`
	RecipeID             *uint  `json:"recipe_id"`
	ExternalIngredientID string `json:"external_ingredient_id"`
}

func (h *Handler) AddShoppingItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.ShoppingListItem{
		UserID:               userID,
		Item:                 req.Item,
		Quantity:             req.Quantity,
		Unit:                 req.Unit,
		RecipeID:             req.RecipeID,
		ExternalIngredientID: req.ExternalIngredientID,
	}
	if err := h.Store.AddToShoppingList(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added", "item": item})
}

type UpdateShoppingItemRequest struct {
	Item     *string `json:"item"`
	Quantity *string `json:"quantity"`
	Unit     *string `json:"unit"`
	Checked  *bool   `json:"checked"`
	RecipeID *uint   `json:"recipe_id"`
}

func (h *Handler) UpdateShoppingItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	existing, err := h.Store.GetShoppingListItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This item does not belong to you"})
		return
	}

	var req UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Item != nil {
		updates["item"] = *req.Item
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Checked != nil {
		updates["checked"] = *req.Checked
	}
	if req.RecipeID != nil {
		updates["recipe_id"] = *req.RecipeID
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	item, err := h.Store.UpdateShoppingListItem(id, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": item})
}

func (h *Handler) DeleteShoppingItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	existing, err := h.Store.GetShoppingListItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This item does not belong to you"})
		return
	}

	if _, err := h.Store.DeleteShoppingListItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted", "item_id": id})
}

// ClearShoppingList removes everything on the caller's list.
func (h *Handler) ClearShoppingList(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cleared, err := h.Store.ClearShoppingList(userID)
	if err != nil || !cleared {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear shopping list"})
		return
	}
	h.logActivity(userID, "shopping_list_cleared", 0, "shopping_list", "")
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list cleared"})
}

// ItemNutrition enriches one shopping-list item with nutrition facts
// from the external food database. A miss is reported as unavailable,
// never as a failure.
func (h *Handler) ItemNutrition(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.Store.GetShoppingListItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if item.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This item does not belong to you"})
		return
	}

	var (
		facts     interface{}
		available bool
	)
	if item.ExternalIngredientID != "" {
		if f, ok := h.Nutrition.ByID(c.Request.Context(), item.ExternalIngredientID); ok {
			facts, available = f, true
		}
	}
	if !available {
		if f, ok := h.Nutrition.ByName(c.Request.Context(), item.Item); ok {
			facts, available = f, true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"item":      item,
		"available": available,
		"nutrition": facts,
	})
}
