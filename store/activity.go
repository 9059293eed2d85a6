package store

import (
	"recipe-planner-api/models"
)

// CreateActivityLog appends one audit-trail entry; entries are never
// updated or removed by normal flows.
func (s *Store) CreateActivityLog(entry *models.ActivityLog) error {
	return s.db.Create(entry).Error
}

func (s *Store) GetActivityLogs(userID uint) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
