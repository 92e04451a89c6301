package database

import (
	"fmt"

	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes and the composite unique constraint on votes are
// created from the struct definitions in the domain package.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Falla{},
		&domain.Ninot{},
		&domain.Event{},
		&domain.Comment{},
		&domain.Vote{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
