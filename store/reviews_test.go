package store

import "testing"

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Soup", user.ID)

	mustReview(t, s, user.ID, recipe.ID, 4)
	mustReview(t, s, user.ID, recipe.ID, 5)

	avg, ok, err := s.AverageRating(recipe.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if !ok || avg != 4.5 {
		t.Fatalf("expected 4.5, got %v (ok=%v)", avg, ok)
	}

	mustReview(t, s, user.ID, recipe.ID, 4) // mean 4.333... -> 4.3
	avg, ok, err = s.AverageRating(recipe.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if !ok || avg != 4.3 {
		t.Fatalf("expected 4.3, got %v (ok=%v)", avg, ok)
	}
}

func TestAverageRating_AbsentWithoutReviews(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Bread", user.ID)

	avg, ok, err := s.AverageRating(recipe.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if ok || avg != 0 {
		t.Fatalf("expected absent rating, got %v (ok=%v)", avg, ok)
	}
}

func TestDeleteReview(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Stew", user.ID)
	mustReview(t, s, user.ID, recipe.ID, 3)

	reviews, err := s.GetReviewsByRecipe(recipe.ID)
	if err != nil || len(reviews) != 1 {
		t.Fatalf("expected one review, got %d err %v", len(reviews), err)
	}

	deleted, err := s.DeleteReview(reviews[0].ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteReview: %v (deleted=%v)", err, deleted)
	}
	if _, ok, _ := s.AverageRating(recipe.ID); ok {
		t.Fatal("rating must be absent after last review removed")
	}
}
