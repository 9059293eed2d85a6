package routes

import (
	"recipe-planner-api/handlers"
	"recipe-planner-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Recipe browsing (no auth needed)
		public.GET("/recipes", h.ListRecipes)
		public.GET("/recipes/external/:id", h.GetExternalRecipe)
		public.GET("/recipes/:id", h.GetRecipe)
		public.GET("/recipes/:id/reviews", h.GetRecipeReviews)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		// Profile
		auth.GET("/profile", h.GetProfile)
		auth.PUT("/profile", h.UpdateProfile)

		// Recipe management
		auth.POST("/recipes", h.CreateRecipe)
		auth.PUT("/recipes/:id", h.UpdateRecipe)
		auth.DELETE("/recipes/:id", h.DeleteRecipe)

		// Reviews
		auth.POST("/recipes/:id/reviews", h.AddReview)
		auth.GET("/reviews", h.GetMyReviews)
		auth.DELETE("/reviews/:id", h.DeleteReview)

		// Favorites
		auth.GET("/favorites", h.ListFavorites)
		auth.POST("/favorites/:recipeId", h.AddFavorite)
		auth.DELETE("/favorites/:recipeId", h.RemoveFavorite)
		auth.GET("/favorites/:recipeId/check", h.CheckFavorite)

		// Shopping list
		auth.GET("/shopping-list", h.GetShoppingList)
		auth.POST("/shopping-list", h.AddShoppingItem)
		auth.PUT("/shopping-list/:id", h.UpdateShoppingItem)
		auth.DELETE("/shopping-list/:id", h.DeleteShoppingItem)
		auth.DELETE("/shopping-list", h.ClearShoppingList)
		auth.GET("/shopping-list/:id/nutrition", h.ItemNutrition)

		// Meal planning
		auth.GET("/meal-plans", h.ListMealPlans)
		auth.POST("/meal-plans", h.CreateMealPlan)
		auth.PUT("/meal-plans/:id", h.UpdateMealPlan)
		auth.DELETE("/meal-plans/:id", h.DeleteMealPlan)

		// Activity feed
		auth.GET("/activity", h.GetActivity)
	}
}
