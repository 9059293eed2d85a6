package store

import "testing"

func TestFavoriteLifecycle(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Soup", user.ID)

	if _, err := s.AddFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	isFav, err := s.IsFavorite(user.ID, recipe.ID)
	if err != nil || !isFav {
		t.Fatalf("expected favorite after add, got %v err %v", isFav, err)
	}

	// Duplicate insert is a silent no-op at this layer.
	if _, err := s.AddFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("duplicate AddFavorite: %v", err)
	}

	removed, err := s.RemoveFavorite(user.ID, recipe.ID)
	if err != nil || !removed {
		t.Fatalf("RemoveFavorite: %v (removed=%v)", err, removed)
	}
	isFav, err = s.IsFavorite(user.ID, recipe.ID)
	if err != nil || isFav {
		t.Fatalf("expected no favorite after remove, got %v err %v", isFav, err)
	}

	// Removing twice reports false, never an error.
	removed, err = s.RemoveFavorite(user.ID, recipe.ID)
	if err != nil || removed {
		t.Fatalf("second remove must report false, got %v err %v", removed, err)
	}
}

func TestGetFavorites_DropsDanglingBookmarks(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	keep := mustCreateRecipe(t, s, "Keeper", user.ID)
	gone := mustCreateRecipe(t, s, "Goner", user.ID)

	if _, err := s.AddFavorite(user.ID, keep.ID); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if _, err := s.AddFavorite(user.ID, gone.ID); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if _, err := s.DeleteRecipe(gone.ID); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}

	favorites, err := s.GetFavorites(user.ID)
	if err != nil {
		t.Fatalf("GetFavorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != keep.ID {
		t.Fatalf("expected only the surviving recipe, got %+v", favorites)
	}
}
