package handlers

import (
	"net/http"
	"time"

	"recipe-planner-api/middleware"
	"recipe-planner-api/models"

	"github.com/gin-gonic/gin"
)

const planDateLayout = "2006-01-02"

// ListMealPlans returns the caller's plans, date ascending; with
// ?date=YYYY-MM-DD only that day, ordered breakfast → lunch → dinner →
// snack.
func (h *Handler) ListMealPlans(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation(planDateLayout, raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		plans, err := h.Store.GetMealPlansByDate(userID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plans"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(plans), "date": raw, "meal_plans": plans})
		return
	}

	plans, err := h.Store.GetMealPlans(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(plans), "meal_plans": plans})
}

type CreateMealPlanRequest struct {
	RecipeID    uint            `json:"recipe_id" binding:"required"`
	PlannedDate string          `json:"planned_date" binding:"required"`
	MealType    models.MealType `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Notes       string          `json:"notes"`
}

func (h *Handler) CreateMealPlan(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation(planDateLayout, req.PlannedDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_date, expected YYYY-MM-DD"})
		return
	}

	recipe, err := h.Store.GetRecipe(req.RecipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	plan := models.MealPlan{
		UserID:      userID,
		RecipeID:    req.RecipeID,
		PlannedDate: date,
		MealType:    req.MealType,
		Notes:       req.Notes,
	}
	if err := h.Store.CreateMealPlan(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal plan"})
		return
	}

	h.logActivity(userID, "meal_planned", plan.ID, "meal_plan", string(req.MealType)+" on "+req.PlannedDate)
	c.JSON(http.StatusCreated, gin.H{"message": "Meal planned", "meal_plan": plan})
}

type UpdateMealPlanRequest struct {
	RecipeID    *uint            `json:"recipe_id"`
	PlannedDate *string          `json:"planned_date"`
	MealType    *models.MealType `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Notes       *string          `json:"notes"`
}

func (h *Handler) UpdateMealPlan(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	existing, err := h.Store.GetMealPlan(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plan"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This meal plan does not belong to you"})
		return
	}

	var req UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.RecipeID != nil {
		updates["recipe_id"] = *req.RecipeID
	}
	if req.PlannedDate != nil {
		date, err := time.ParseInLocation(planDateLayout, *req.PlannedDate, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_date, expected YYYY-MM-DD"})
			return
		}
		updates["planned_date"] = date
	}
	if req.MealType != nil {
		updates["meal_type"] = *req.MealType
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	plan, err := h.Store.UpdateMealPlan(id, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan updated", "meal_plan": plan})
}

func (h *Handler) DeleteMealPlan(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	existing, err := h.Store.GetMealPlan(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plan"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This meal plan does not belong to you"})
		return
	}

	if _, err := h.Store.DeleteMealPlan(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted", "meal_plan_id": id})
}
