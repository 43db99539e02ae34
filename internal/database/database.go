package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading-dashboard/internal/models"
)

// NewDatabase creates a new database connection and performs auto-migration.
//
// Migration is additive only: the transactions table is owned by the external
// trading process and the users table by the provisioning tool, so nothing is
// ever dropped here.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Setting{}, &models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	return db, nil
}
