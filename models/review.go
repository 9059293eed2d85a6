package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null"` // 1..5, validated by the handler
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite is a user's bookmark of a recipe, keyed by (user, recipe).
type Favorite struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RecipeID  uint      `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}
