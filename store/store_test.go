package store

import (
	"testing"

	"recipe-planner-api/config"
	"recipe-planner-api/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := config.InitDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return New(db)
}

func mustCreateUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		Name:         username,
		PasswordHash: "x",
	}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return user
}

func mustCreateRecipe(t *testing.T, s *Store, title string, userID uint) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{Title: title, UserID: userID, Difficulty: models.DifficultyEasy}
	if err := s.CreateRecipe(recipe); err != nil {
		t.Fatalf("CreateRecipe(%s): %v", title, err)
	}
	return recipe
}

func mustReview(t *testing.T, s *Store, userID, recipeID uint, rating int) {
	t.Helper()
	if err := s.CreateReview(&models.Review{UserID: userID, RecipeID: recipeID, Rating: rating}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
}
