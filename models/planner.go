package models

import "time"

// MealType is the calendar slot a recipe is planned into
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Ordinal gives the display order of meal slots within a day. Unknown
// types sort last.
func (m MealType) Ordinal() int {
	switch m {
	case MealBreakfast:
		return 1
	case MealLunch:
		return 2
	case MealDinner:
		return 3
	case MealSnack:
		return 4
	default:
		return 99
	}
}

type ShoppingListItem struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               uint      `json:"user_id" gorm:"not null;index"`
	Item                 string    `json:"item" gorm:"not null"`
	Quantity             string    `json:"quantity"`
	Unit                 string    `json:"unit"`
	Checked              bool      `json:"checked" gorm:"default:false"`
	RecipeID             *uint     `json:"recipe_id"` // nil ⇒ uncategorized group
	ExternalIngredientID string    `json:"external_ingredient_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type MealPlan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	RecipeID    uint      `json:"recipe_id" gorm:"not null"`
	PlannedDate time.Time `json:"planned_date" gorm:"not null"`
	MealType    MealType  `json:"meal_type" gorm:"not null"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityLog is an append-only audit trail entry; normal flows never
// mutate or delete rows.
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	Action     string    `json:"action" gorm:"not null"`
	EntityID   *uint     `json:"entity_id"`
	EntityType string    `json:"entity_type"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
