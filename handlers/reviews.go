package handlers

import (
	"net/http"
	"strconv"

	"recipe-planner-api/middleware"
	"recipe-planner-api/models"

	"github.com/gin-gonic/gin"
)

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddReview rates a recipe 1..5 with an optional comment.
func (h *Handler) AddReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	review := models.Review{
		UserID:   userID,
		RecipeID: recipeID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := h.Store.CreateReview(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	avg, _, err := h.Store.AverageRating(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rating"})
		return
	}

	h.logActivity(userID, "review_added", recipeID, "recipe", "rated "+strconv.Itoa(req.Rating))
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Review added",
		"review":         review,
		"average_rating": avg,
	})
}

// GetRecipeReviews lists a recipe's reviews, newest first, with the
// current average.
func (h *Handler) GetRecipeReviews(c *gin.Context) {
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Store.GetReviewsByRecipe(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	avg, rated, err := h.Store.AverageRating(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rating"})
		return
	}
	var rating interface{}
	if rated {
		rating = avg
	}
	c.JSON(http.StatusOK, gin.H{
		"count":          len(reviews),
		"reviews":        reviews,
		"average_rating": rating,
	})
}

// GetMyReviews lists the caller's reviews, newest first.
func (h *Handler) GetMyReviews(c *gin.Context) {
	userID := middleware.GetUserID(c)
	reviews, err := h.Store.GetReviewsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// DeleteReview removes one of the caller's own reviews.
func (h *Handler) DeleteReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	review, err := h.Store.GetReview(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This review does not belong to you"})
		return
	}

	if _, err := h.Store.DeleteReview(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted", "review_id": id})
}
