package main

import (
	"net/http"

	"recipe-planner-api/clients"
	"recipe-planner-api/config"
	"recipe-planner-api/handlers"
	"recipe-planner-api/logger"
	"recipe-planner-api/middleware"
	"recipe-planner-api/routes"
	"recipe-planner-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	cfg := config.Load("config.yaml")
	logger.Init(cfg.Mode)
	defer logger.Sync()

	if cfg.Mode == "release" || cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}

	st := store.New(db)
	recipeSource := clients.NewRecipeSource(cfg.RecipeAPIBase)
	nutrition := clients.NewNutritionClient(cfg.FoodAPIBase)
	h := handlers.New(st, recipeSource, nutrition)

	r := gin.Default()

	// CORS middleware for frontend integration
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Recipe Planner API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍲 Welcome to the Recipe Planner API",
			"recipes": "/api/recipes",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
