package config

import (
	"os"

	"recipe-planner-api/logger"
	"recipe-planner-api/models"

	"github.com/glebarez/sqlite"
	"github.com/goccy/go-yaml"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds all runtime settings. File values from config.yaml are the
// base; environment variables override.
type Config struct {
	Port          string `yaml:"port"`
	Mode          string `yaml:"mode"`
	DBPath        string `yaml:"db_path"`
	RecipeAPIBase string `yaml:"recipe_api_base"`
	FoodAPIBase   string `yaml:"food_api_base"`
}

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "recipe_planner_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads config.yaml (if present) and applies env overrides.
func Load(path string) *Config {
	cfg := &Config{
		Port:          "8080",
		Mode:          "debug",
		DBPath:        "recipe_planner.db",
		RecipeAPIBase: "https://www.themealdb.com/api/json/v1/1",
		FoodAPIBase:   "https://world.openfoodfacts.org",
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			logger.Warn("ignoring malformed config file", "path", path, "error", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Mode = getEnv("GIN_MODE", cfg.Mode)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.RecipeAPIBase = getEnv("RECIPE_API_BASE", cfg.RecipeAPIBase)
	cfg.FoodAPIBase = getEnv("FOOD_API_BASE", cfg.FoodAPIBase)
	return cfg
}

// InitDB opens the sqlite database and migrates all models. The handle is
// returned to the caller rather than stashed in a package global so the
// store can be constructed explicitly at boot.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Instruction{},
		&models.Review{},
		&models.Favorite{},
		&models.ShoppingListItem{},
		&models.MealPlan{},
		&models.ActivityLog{},
	)
	if err != nil {
		return nil, err
	}

	logger.Info("database connected and migrated", "path", path)
	return db, nil
}
