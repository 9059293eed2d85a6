package store

import (
	"sort"

	"recipe-planner-api/models"

	"gorm.io/gorm"
)

func (s *Store) GetRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.First(&recipe, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeWithDetails loads the recipe plus its ingredients and its
// instructions in step order.
func (s *Store) GetRecipeWithDetails(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Ingredients").
		Preload("Instructions", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number asc")
		}).
		First(&recipe, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetAllRecipes returns every recipe in insertion order.
func (s *Store) GetAllRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("id asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetTopRecipes ranks recipes by their average review rating (recipes
// with no reviews rank as 0) and returns the best `limit`. Ties keep
// insertion order. limit <= 0 yields an empty slice; a limit beyond the
// total count yields everything.
func (s *Store) GetTopRecipes(limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		return []models.Recipe{}, nil
	}
	recipes, err := s.GetAllRecipes()
	if err != nil {
		return nil, err
	}
	averages, err := s.averageRatings()
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Rating = averages[recipes[i].ID]
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].Rating > recipes[j].Rating
	})
	if limit < len(recipes) {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

// GetRecentRecipes returns the `limit` most recently created recipes,
// newest first.
func (s *Store) GetRecentRecipes(limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		return []models.Recipe{}, nil
	}
	var recipes []models.Recipe
	if err := s.db.Order("created_at desc, id desc").Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipesByTag filters recipes whose tag list contains the exact tag.
// limit <= 0 returns all matches.
func (s *Store) GetRecipesByTag(tag string, limit int) ([]models.Recipe, error) {
	recipes, err := s.GetAllRecipes()
	if err != nil {
		return nil, err
	}
	matched := []models.Recipe{}
	for _, r := range recipes {
		for _, t := range r.Tags {
			if t == tag {
				matched = append(matched, r)
				break
			}
		}
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

// SearchRecipes matches the query against title and description.
func (s *Store) SearchRecipes(query string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	pattern := "%" + query + "%"
	err := s.db.
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Order("id asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe inserts the recipe and any attached ingredient and
// instruction rows in one go.
func (s *Store) CreateRecipe(recipe *models.Recipe) error {
	return s.db.Create(recipe).Error
}

// UpdateRecipe applies a shallow merge; returns nil when absent.
func (s *Store) UpdateRecipe(id uint, updates map[string]interface{}) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(id)
	if err != nil || recipe == nil {
		return nil, err
	}
	if err := s.db.Model(recipe).Updates(updates).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes the recipe row only; child rows are left in place
// (no cascade).
func (s *Store) DeleteRecipe(id uint) (bool, error) {
	res := s.db.Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) GetIngredientsByRecipe(recipeID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.Where("recipe_id = ?", recipeID).Order("id asc").Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetInstructionsByRecipe returns steps in ascending step order
// regardless of insertion order.
func (s *Store) GetInstructionsByRecipe(recipeID uint) ([]models.Instruction, error) {
	var instructions []models.Instruction
	err := s.db.Where("recipe_id = ?", recipeID).Order("step_number asc").Find(&instructions).Error
	if err != nil {
		return nil, err
	}
	return instructions, nil
}

// ReplaceIngredients swaps the full ingredient list of a recipe.
func (s *Store) ReplaceIngredients(recipeID uint, ingredients []models.Ingredient) error {
	if err := s.db.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].RecipeID = recipeID
	}
	if len(ingredients) == 0 {
		return nil
	}
	return s.db.Create(&ingredients).Error
}

// ReplaceInstructions swaps the full instruction list of a recipe.
func (s *Store) ReplaceInstructions(recipeID uint, instructions []models.Instruction) error {
	if err := s.db.Where("recipe_id = ?", recipeID).Delete(&models.Instruction{}).Error; err != nil {
		return err
	}
	for i := range instructions {
		instructions[i].ID = 0
		instructions[i].RecipeID = recipeID
	}
	if len(instructions) == 0 {
		return nil
	}
	return s.db.Create(&instructions).Error
}
