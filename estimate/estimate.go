package estimate

import (
	"strings"

	"recipe-planner-api/models"
)

// Macros is a per-serving nutrition guess for a recipe category. The
// external recipe database carries no nutrition data, so listings are
// enriched with these best-effort figures; they are not an authoritative
// nutrition source.
type Macros struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// categoryMacros is the authoritative keyword table. Matching is done on
// lowercase substring so "Chicken Breast" and "chicken" both hit the
// chicken row.
var categoryMacros = []struct {
	Keyword string
	Macros  Macros
}{
	{"beef", Macros{Calories: 620, Protein: 38, Fat: 34, Carbs: 28}},
	{"pork", Macros{Calories: 580, Protein: 34, Fat: 32, Carbs: 26}},
	{"lamb", Macros{Calories: 600, Protein: 36, Fat: 33, Carbs: 25}},
	{"chicken", Macros{Calories: 480, Protein: 42, Fat: 18, Carbs: 30}},
	{"seafood", Macros{Calories: 420, Protein: 36, Fat: 14, Carbs: 28}},
	{"fish", Macros{Calories: 420, Protein: 36, Fat: 14, Carbs: 28}},
	{"pasta", Macros{Calories: 550, Protein: 18, Fat: 16, Carbs: 72}},
	{"dessert", Macros{Calories: 450, Protein: 6, Fat: 20, Carbs: 60}},
	{"breakfast", Macros{Calories: 380, Protein: 16, Fat: 18, Carbs: 38}},
	{"vegan", Macros{Calories: 340, Protein: 12, Fat: 12, Carbs: 46}},
	{"vegetarian", Macros{Calories: 360, Protein: 14, Fat: 14, Carbs: 44}},
	{"side", Macros{Calories: 220, Protein: 6, Fat: 10, Carbs: 26}},
	{"starter", Macros{Calories: 260, Protein: 10, Fat: 12, Carbs: 24}},
}

// defaultMacros covers categories no keyword matches.
var defaultMacros = Macros{Calories: 450, Protein: 22, Fat: 18, Carbs: 42}

// MacrosForCategory returns the per-serving nutrition guess for a recipe
// category or dish name.
func MacrosForCategory(category string) Macros {
	needle := strings.ToLower(category)
	for _, row := range categoryMacros {
		if strings.Contains(needle, row.Keyword) {
			return row.Macros
		}
	}
	return defaultMacros
}

// Difficulty guesses a skill level from ingredient and step counts.
func Difficulty(numIngredients, numSteps int) models.Difficulty {
	score := numIngredients + numSteps
	switch {
	case score <= 9:
		return models.DifficultyEasy
	case score <= 18:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// PrepTime guesses preparation minutes from the ingredient count.
func PrepTime(numIngredients int) int {
	return 10 + 2*numIngredients
}

// CookTime guesses cooking minutes from the category: slow-cooked meats
// take longer than desserts or sides.
func CookTime(category string) int {
	needle := strings.ToLower(category)
	switch {
	case strings.Contains(needle, "beef"), strings.Contains(needle, "lamb"), strings.Contains(needle, "pork"):
		return 60
	case strings.Contains(needle, "chicken"), strings.Contains(needle, "pasta"):
		return 35
	case strings.Contains(needle, "side"), strings.Contains(needle, "starter"), strings.Contains(needle, "breakfast"):
		return 20
	default:
		return 30
	}
}

// DefaultServings is used when the source provides no serving count.
const DefaultServings = 4
