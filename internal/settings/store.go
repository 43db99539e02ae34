package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trading-dashboard/internal/models"
)

// ErrInvalidStatus is returned by SetStatus for values other than "on"/"off".
var ErrInvalidStatus = errors.New("status must be \"on\" or \"off\"")

// Store reads and writes the singleton auto-trade setting row.
//
// The flag is advisory: this service only records intent, the external
// trading process is responsible for honoring it. Writes are unconditional
// last-write-wins; authorization is the caller's job.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new settings Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Status returns the current auto-trade status. A missing row means the
// switch has never been written and reads as "off".
func (s *Store) Status() (string, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.StatusOff, nil
		}
		return "", fmt.Errorf("failed to read setting: %w", err)
	}
	return setting.Status, nil
}

// SetStatus upserts the singleton row's status. The first write creates the
// row; later writes update it in place, so the table never grows past one row.
func (s *Store) SetStatus(status string) error {
	if status != models.StatusOn && status != models.StatusOff {
		return ErrInvalidStatus
	}

	var setting models.Setting
	err := s.db.First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting.Status = status
			if err := s.db.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to read setting: %w", err)
	}

	setting.Status = status
	if err := s.db.Save(&setting).Error; err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}
	return nil
}
