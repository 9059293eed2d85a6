package store

import (
	"sort"
	"time"

	"recipe-planner-api/models"
)

func (s *Store) GetMealPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Where("user_id = ?", userID).Order("planned_date asc, id asc").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetMealPlansByDate returns the user's plans whose date falls on the
// same calendar day as `date` (time of day ignored), ordered breakfast,
// lunch, dinner, snack, then anything else.
func (s *Store) GetMealPlansByDate(userID uint, date time.Time) ([]models.MealPlan, error) {
	plans, err := s.GetMealPlans(userID)
	if err != nil {
		return nil, err
	}
	matched := []models.MealPlan{}
	for _, p := range plans {
		if sameDay(p.PlannedDate, date) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MealType.Ordinal() < matched[j].MealType.Ordinal()
	})
	return matched, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *Store) GetMealPlan(id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.First(&plan, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *Store) CreateMealPlan(plan *models.MealPlan) error {
	return s.db.Create(plan).Error
}

// UpdateMealPlan applies a shallow merge; returns nil when absent.
func (s *Store) UpdateMealPlan(id uint, updates map[string]interface{}) (*models.MealPlan, error) {
	plan, err := s.GetMealPlan(id)
	if err != nil || plan == nil {
		return nil, err
	}
	if err := s.db.Model(plan).Updates(updates).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Store) DeleteMealPlan(id uint) (bool, error) {
	res := s.db.Delete(&models.MealPlan{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
