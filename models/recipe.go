package models

import (
	"time"

	"gorm.io/datatypes"
)

// Difficulty represents the skill level a recipe requires
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ExternalUserID marks recipes pulled from the public recipe database;
// they have no owning local user.
const ExternalUserID uint = 0

type Recipe struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description"`
	ImageURL     string                      `json:"image_url"`
	PrepTime     int                         `json:"prep_time_minutes"`
	CookTime     int                         `json:"cook_time_minutes"`
	Difficulty   Difficulty                  `json:"difficulty" gorm:"default:'Medium'"`
	Calories     float64                     `json:"calories"`
	Protein      float64                     `json:"protein"`
	Fats         float64                     `json:"fats"`
	Carbs        float64                     `json:"carbs"`
	Servings     int                         `json:"servings"`
	Rating       float64                     `json:"rating"` // cached average, authoritative value is recomputed from reviews
	UserID       uint                        `json:"user_id"`
	Source       string                      `json:"source"`
	ExternalID   string                      `json:"external_id,omitempty"`
	CookingTips  string                      `json:"cooking_tips"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Ingredients  []Ingredient                `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
	Instructions []Instruction               `json:"instructions,omitempty" gorm:"foreignKey:RecipeID"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

type Ingredient struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RecipeID uint   `json:"recipe_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
	Quantity string `json:"quantity"` // free text, never parsed numerically
	Unit     string `json:"unit"`
}

type Instruction struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	RecipeID    uint   `json:"recipe_id" gorm:"not null;index"`
	StepNumber  int    `json:"step_number" gorm:"not null"` // 1-based
	Description string `json:"description" gorm:"not null"`
}
