package database

import (
	"fmt"

	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Medication{},
		&domain.Consultation{},
		&domain.Exam{},
		&domain.EventLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
