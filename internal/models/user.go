package models

import "gorm.io/gorm"

// User is an operator account allowed to flip the auto-trade switch and see
// the trade detail table. Records are provisioned out-of-band (cmd/useradd);
// the server only ever reads them.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"` // sha256, lowercase hex
}
