package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store owns every entity collection for the process lifetime. It is
// constructed once at boot and handed to the handlers by reference; there
// is no package-level database handle.
//
// Absence of a row is reported as a nil (or false) result, never as an
// error. Only real database failures propagate.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// notFound collapses gorm's record-not-found into the absent sentinel.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
