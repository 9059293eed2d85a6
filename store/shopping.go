package store

import (
	"recipe-planner-api/models"
)

// ShoppingListGroup is one bucket of a recipe-grouped shopping list.
// Items not linked to a recipe land in the "uncategorized" group.
type ShoppingListGroup struct {
	RecipeID    *uint                     `json:"recipe_id"`
	RecipeTitle string                    `json:"recipe_title"`
	Items       []models.ShoppingListItem `json:"items"`
}

const uncategorizedGroup = "uncategorized"

func (s *Store) GetShoppingList(userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := s.db.Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetShoppingListGrouped buckets the user's list by source recipe, in
// first-seen order. Groups whose recipe has been deleted keep the id but
// fall back to the uncategorized title.
func (s *Store) GetShoppingListGrouped(userID uint) ([]ShoppingListGroup, error) {
	items, err := s.GetShoppingList(userID)
	if err != nil {
		return nil, err
	}
	groups := []ShoppingListGroup{}
	index := make(map[uint]int) // recipe id -> group position
	uncategorized := -1
	for _, item := range items {
		if item.RecipeID == nil {
			if uncategorized == -1 {
				groups = append(groups, ShoppingListGroup{RecipeTitle: uncategorizedGroup})
				uncategorized = len(groups) - 1
			}
			groups[uncategorized].Items = append(groups[uncategorized].Items, item)
			continue
		}
		pos, seen := index[*item.RecipeID]
		if !seen {
			title := uncategorizedGroup
			recipe, err := s.GetRecipe(*item.RecipeID)
			if err != nil {
				return nil, err
			}
			if recipe != nil {
				title = recipe.Title
			}
			groups = append(groups, ShoppingListGroup{RecipeID: item.RecipeID, RecipeTitle: title})
			pos = len(groups) - 1
			index[*item.RecipeID] = pos
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups, nil
}

func (s *Store) GetShoppingListItem(id uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := s.db.First(&item, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) AddToShoppingList(item *models.ShoppingListItem) error {
	return s.db.Create(item).Error
}

// UpdateShoppingListItem applies a shallow merge; returns nil when the
// item does not exist.
func (s *Store) UpdateShoppingListItem(id uint, updates map[string]interface{}) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := s.db.First(&item, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteShoppingListItem(id uint) (bool, error) {
	res := s.db.Delete(&models.ShoppingListItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClearShoppingList removes every item the user has; clearing an already
// empty list still succeeds.
func (s *Store) ClearShoppingList(userID uint) (bool, error) {
	res := s.db.Where("user_id = ?", userID).Delete(&models.ShoppingListItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return true, nil
}
