package handlers

import (
	"net/http"

	"recipe-planner-api/middleware"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the caller's bookmarked recipes.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipes, err := h.Store.GetFavorites(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(recipes), "favorites": recipes})
}

// AddFavorite bookmarks a recipe; a duplicate is rejected here rather
// than in the store.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}

	recipe, err := h.Store.GetRecipe(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	already, err := h.Store.IsFavorite(userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorites"})
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"error": "Recipe already in favorites"})
		return
	}

	fav, err := h.Store.AddFavorite(userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	h.logActivity(userID, "favorite_added", recipeID, "recipe", recipe.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites", "favorite": fav})
}

// RemoveFavorite drops the bookmark; removing a bookmark that is not
// there is a 404, never an error.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}

	removed, err := h.Store.RemoveFavorite(userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not in favorites"})
		return
	}

	h.logActivity(userID, "favorite_removed", recipeID, "recipe", "")
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "recipe_id": recipeID})
}

// CheckFavorite reports whether the caller has bookmarked the recipe.
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	isFav, err := h.Store.IsFavorite(userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": recipeID, "is_favorite": isFav})
}
