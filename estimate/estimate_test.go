package estimate

import (
	"testing"

	"recipe-planner-api/models"
)

func TestMacrosForCategory(t *testing.T) {
	if got := MacrosForCategory("Chicken"); got.Protein != 42 {
		t.Fatalf("chicken protein guess: %+v", got)
	}
	if got := MacrosForCategory("Seafood Paella"); got.Calories != 420 {
		t.Fatalf("seafood match should hit on substring: %+v", got)
	}
	if got := MacrosForCategory("Miscellaneous"); got != defaultMacros {
		t.Fatalf("unknown category should use the default: %+v", got)
	}
}

func TestDifficulty(t *testing.T) {
	cases := []struct {
		ingredients, steps int
		want               models.Difficulty
	}{
		{3, 3, models.DifficultyEasy},
		{5, 4, models.DifficultyEasy},
		{8, 6, models.DifficultyMedium},
		{12, 10, models.DifficultyHard},
	}
	for _, tc := range cases {
		if got := Difficulty(tc.ingredients, tc.steps); got != tc.want {
			t.Fatalf("Difficulty(%d, %d) = %s, want %s", tc.ingredients, tc.steps, got, tc.want)
		}
	}
}

func TestTimeGuesses(t *testing.T) {
	if got := PrepTime(5); got != 20 {
		t.Fatalf("PrepTime(5) = %d", got)
	}
	if CookTime("Beef") <= CookTime("Dessert") {
		t.Fatal("slow-cooked meat should take longer than dessert")
	}
}
