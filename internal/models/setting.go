package models

import "gorm.io/gorm"

// Auto-trade switch values as stored in the settings table.
const (
	StatusOn  = "on"
	StatusOff = "off"
)

// Setting holds the auto-trade enable flag. There should only ever be one
// row in this table; a missing row means "off".
type Setting struct {
	gorm.Model
	Status string `gorm:"not null" json:"status"`
}
