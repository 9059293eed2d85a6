package store

import (
	"recipe-planner-api/models"

	"gorm.io/gorm/clause"
)

// AddFavorite inserts the (user, recipe) bookmark. A duplicate insert is
// silently a no-op; callers wanting to reject duplicates check
// IsFavorite first.
func (s *Store) AddFavorite(userID, recipeID uint) (*models.Favorite, error) {
	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// RemoveFavorite reports false when there was nothing to remove.
func (s *Store) RemoveFavorite(userID, recipeID uint) (bool, error) {
	res := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) IsFavorite(userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFavorites joins the user's bookmarks to their recipes, newest
// bookmark first. Bookmarks whose recipe has since been deleted are
// silently dropped.
func (s *Store) GetFavorites(userID uint) ([]models.Recipe, error) {
	var favorites []models.Favorite
	err := s.db.Where("user_id = ?", userID).Order("created_at desc, recipe_id desc").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	recipes := []models.Recipe{}
	for _, fav := range favorites {
		recipe, err := s.GetRecipe(fav.RecipeID)
		if err != nil {
			return nil, err
		}
		if recipe == nil {
			continue // dangling bookmark
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}
