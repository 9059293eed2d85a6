package handlers

import (
	"net/http"
	"strconv"

	"recipe-planner-api/middleware"
	"recipe-planner-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const defaultListLimit = 12

// ListRecipes serves the browse endpoint: ?sort=top|recent, ?tag=,
// ?search=, ?limit=. Local storage is consulted first; when it comes up
// short of the requested count the result is padded with recipes from
// the external source. External failures just mean less padding.
func (h *Handler) ListRecipes(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	var (
		local []models.Recipe
		err   error
	)
	search := c.Query("search")
	tag := c.Query("tag")
	switch {
	case search != "":
		local, err = h.Store.SearchRecipes(search)
	case tag != "":
		local, err = h.Store.GetRecipesByTag(tag, limit)
	case c.Query("sort") == "top":
		local, err = h.Store.GetTopRecipes(limit)
	default:
		local, err = h.Store.GetRecentRecipes(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipes"})
		return
	}
	if limit > 0 && len(local) > limit {
		local = local[:limit]
	}

	// Pad sparse local results with external ones, local first.
	if need := limit - len(local); need > 0 {
		var external []models.Recipe
		switch {
		case search != "":
			external = h.Recipes.Search(c.Request.Context(), search)
		case tag != "":
			external = h.Recipes.ByCategory(c.Request.Context(), tag, need)
		default:
			external = h.Recipes.Random(c.Request.Context(), need)
		}
		for _, r := range external {
			if need == 0 {
				break
			}
			local = append(local, r)
			need--
		}
	}

	c.JSON(http.StatusOK, gin.H{"count": len(local), "recipes": local})
}

// GetRecipe returns one recipe with children, reviews and the average
// rating (null when unreviewed).
func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	recipe, err := h.Store.GetRecipeWithDetails(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	avg, rated, err := h.Store.AverageRating(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating"})
		return
	}
	var rating interface{}
	if rated {
		rating = avg
		recipe.Rating = avg
	}
	reviews, err := h.Store.GetReviewsByRecipe(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":         recipe,
		"average_rating": rating,
		"reviews":        reviews,
	})
}

// GetExternalRecipe proxies a detail lookup by external id.
func (h *Handler) GetExternalRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe := h.Recipes.ByID(c.Request.Context(), id)
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

type IngredientInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type InstructionInput struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description" binding:"required"`
}

type CreateRecipeRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url"`
	PrepTime     int                `json:"prep_time_minutes"`
	CookTime     int                `json:"cook_time_minutes"`
	Difficulty   models.Difficulty  `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Calories     float64            `json:"calories"`
	Protein      float64            `json:"protein"`
	Fats         float64            `json:"fats"`
	Carbs        float64            `json:"carbs"`
	Servings     int                `json:"servings"`
	CookingTips  string             `json:"cooking_tips"`
	Tags         []string           `json:"tags"`
	Ingredients  []IngredientInput  `json:"ingredients"`
	Instructions []InstructionInput `json:"instructions"`
}

// CreateRecipe inserts a user recipe with its children. Steps without an
// explicit number take their position in the list.
func (h *Handler) CreateRecipe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Difficulty:  req.Difficulty,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Fats:        req.Fats,
		Carbs:       req.Carbs,
		Servings:    req.Servings,
		UserID:      userID,
		Source:      "user",
		CookingTips: req.CookingTips,
		Tags:        datatypes.NewJSONSlice(req.Tags),
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = models.DifficultyMedium
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for i, step := range req.Instructions {
		number := step.StepNumber
		if number <= 0 {
			number = i + 1
		}
		recipe.Instructions = append(recipe.Instructions, models.Instruction{
			StepNumber:  number,
			Description: step.Description,
		})
	}

	if err := h.Store.CreateRecipe(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	h.logActivity(userID, "recipe_created", recipe.ID, "recipe", recipe.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "Recipe created", "recipe": recipe})
}

type UpdateRecipeRequest struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	ImageURL     *string            `json:"image_url"`
	PrepTime     *int               `json:"prep_time_minutes"`
	CookTime     *int               `json:"cook_time_minutes"`
	Difficulty   *models.Difficulty `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Calories     *float64           `json:"calories"`
	Protein      *float64           `json:"protein"`
	Fats         *float64           `json:"fats"`
	Carbs        *float64           `json:"carbs"`
	Servings     *int               `json:"servings"`
	CookingTips  *string            `json:"cooking_tips"`
	Tags         []string           `json:"tags"`
	Ingredients  []IngredientInput  `json:"ingredients"`
	Instructions []InstructionInput `json:"instructions"`
}

// UpdateRecipe merges provided fields over the existing record; only the
// owner may update. Ingredient/instruction lists, when present, replace
// the previous lists wholesale.
func (h *Handler) UpdateRecipe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.Store.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if recipe.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This recipe does not belong to you"})
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.PrepTime != nil {
		updates["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		updates["cook_time"] = *req.CookTime
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Calories != nil {
		updates["calories"] = *req.Calories
	}
	if req.Protein != nil {
		updates["protein"] = *req.Protein
	}
	if req.Fats != nil {
		updates["fats"] = *req.Fats
	}
	if req.Carbs != nil {
		updates["carbs"] = *req.Carbs
	}
	if req.Servings != nil {
		updates["servings"] = *req.Servings
	}
	if req.CookingTips != nil {
		updates["cooking_tips"] = *req.CookingTips
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(req.Tags)
	}

	if len(updates) > 0 {
		if _, err := h.Store.UpdateRecipe(id, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
			return
		}
	}
	if req.Ingredients != nil {
		ingredients := make([]models.Ingredient, 0, len(req.Ingredients))
		for _, ing := range req.Ingredients {
			ingredients = append(ingredients, models.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
		}
		if err := h.Store.ReplaceIngredients(id, ingredients); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredients"})
			return
		}
	}
	if req.Instructions != nil {
		instructions := make([]models.Instruction, 0, len(req.Instructions))
		for i, step := range req.Instructions {
			number := step.StepNumber
			if number <= 0 {
				number = i + 1
			}
			instructions = append(instructions, models.Instruction{StepNumber: number, Description: step.Description})
		}
		if err := h.Store.ReplaceInstructions(id, instructions); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update instructions"})
			return
		}
	}

	updated, err := h.Store.GetRecipeWithDetails(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	h.logActivity(userID, "recipe_updated", id, "recipe", updated.Title)
	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated", "recipe": updated})
}

// DeleteRecipe removes an owned recipe.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.Store.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if recipe.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This recipe does not belong to you"})
		return
	}

	deleted, err := h.Store.DeleteRecipe(id)
	if err != nil || !deleted {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	h.logActivity(userID, "recipe_deleted", id, "recipe", recipe.Title)
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted", "recipe_id": id})
}
