package store

import (
	"testing"
	"time"

	"recipe-planner-api/models"
)

func TestGetMealPlansByDate_MealTypeOrdering(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Soup", user.ID)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	// Insert in scrambled order, with varying times of day.
	for _, mt := range []models.MealType{models.MealSnack, models.MealDinner, models.MealBreakfast, models.MealLunch} {
		plan := &models.MealPlan{
			UserID:      user.ID,
			RecipeID:    recipe.ID,
			PlannedDate: day.Add(time.Duration(mt.Ordinal()) * 3 * time.Hour),
			MealType:    mt,
		}
		if err := s.CreateMealPlan(plan); err != nil {
			t.Fatalf("CreateMealPlan: %v", err)
		}
	}
	// A plan on another day must not appear.
	other := &models.MealPlan{UserID: user.ID, RecipeID: recipe.ID, PlannedDate: day.AddDate(0, 0, 1), MealType: models.MealBreakfast}
	if err := s.CreateMealPlan(other); err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}

	plans, err := s.GetMealPlansByDate(user.ID, day.Add(14*time.Hour)) // time of day ignored
	if err != nil {
		t.Fatalf("GetMealPlansByDate: %v", err)
	}
	if len(plans) != 4 {
		t.Fatalf("expected 4 plans for the day, got %d", len(plans))
	}
	want := []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack}
	for i, mt := range want {
		if plans[i].MealType != mt {
			t.Fatalf("slot %d: expected %s, got %s", i, mt, plans[i].MealType)
		}
	}
}

func TestGetMealPlans_SortedByDate(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Soup", user.ID)

	later := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{later, earlier} {
		if err := s.CreateMealPlan(&models.MealPlan{UserID: user.ID, RecipeID: recipe.ID, PlannedDate: d, MealType: models.MealDinner}); err != nil {
			t.Fatalf("CreateMealPlan: %v", err)
		}
	}

	plans, err := s.GetMealPlans(user.ID)
	if err != nil {
		t.Fatalf("GetMealPlans: %v", err)
	}
	if len(plans) != 2 || !plans[0].PlannedDate.Before(plans[1].PlannedDate) {
		t.Fatalf("plans not date ascending: %+v", plans)
	}
}

func TestMealPlanCRUD(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")
	recipe := mustCreateRecipe(t, s, "Soup", user.ID)

	plan := &models.MealPlan{
		UserID:      user.ID,
		RecipeID:    recipe.ID,
		PlannedDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		MealType:    models.MealLunch,
	}
	if err := s.CreateMealPlan(plan); err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}

	updated, err := s.UpdateMealPlan(plan.ID, map[string]interface{}{"notes": "double batch"})
	if err != nil || updated == nil || updated.Notes != "double batch" {
		t.Fatalf("UpdateMealPlan: %+v err %v", updated, err)
	}

	deleted, err := s.DeleteMealPlan(plan.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteMealPlan: %v (deleted=%v)", err, deleted)
	}
	got, err := s.GetMealPlan(plan.ID)
	if err != nil || got != nil {
		t.Fatalf("expected plan gone, got %+v err %v", got, err)
	}
}
