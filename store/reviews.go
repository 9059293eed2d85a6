package store

import (
	"math"

	"recipe-planner-api/models"
)

func (s *Store) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	err := s.db.First(&review, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Store) CreateReview(review *models.Review) error {
	return s.db.Create(review).Error
}

func (s *Store) GetReviewsByRecipe(recipeID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("recipe_id = ?", recipeID).Order("created_at desc, id desc").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) GetReviewsByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating is the arithmetic mean of all review ratings for the
// recipe, rounded to one decimal place. ok is false when the recipe has
// no reviews.
func (s *Store) AverageRating(recipeID uint) (avg float64, ok bool, err error) {
	var ratings []int
	if err := s.db.Model(&models.Review{}).Where("recipe_id = ?", recipeID).Pluck("rating", &ratings).Error; err != nil {
		return 0, false, err
	}
	if len(ratings) == 0 {
		return 0, false, nil
	}
	return roundRating(ratings), true, nil
}

// averageRatings computes the rounded average for every reviewed recipe
// in one pass, for ranking.
func (s *Store) averageRatings() (map[uint]float64, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	byRecipe := make(map[uint][]int)
	for _, r := range reviews {
		byRecipe[r.RecipeID] = append(byRecipe[r.RecipeID], r.Rating)
	}
	averages := make(map[uint]float64, len(byRecipe))
	for id, ratings := range byRecipe {
		averages[id] = roundRating(ratings)
	}
	return averages, nil
}

func roundRating(ratings []int) float64 {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

func (s *Store) DeleteReview(id uint) (bool, error) {
	res := s.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
