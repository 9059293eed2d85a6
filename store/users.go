package store

import (
	"recipe-planner-api/models"
)

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername matches case-insensitively, so "Chef1" and "chef1"
// resolve to the same account.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail matches case-insensitively.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser assigns the id and timestamps. Username/email uniqueness is
// the caller's job via the lookup functions above.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UpdateUser applies a shallow merge of the given fields; returns nil
// when the user does not exist.
func (s *Store) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil || user == nil {
		return nil, err
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return user, nil
}
