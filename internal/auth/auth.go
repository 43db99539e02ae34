package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trading-dashboard/internal/models"
)

// Digest returns the SHA-256 digest of a password as lowercase hex. The same
// encoding is used when provisioning users, so comparison is a plain string
// equality.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Authenticator checks operator credentials against the users table.
type Authenticator struct {
	db *gorm.DB
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(db *gorm.DB) *Authenticator {
	return &Authenticator{db: db}
}

// Authenticate reports whether the supplied credentials match a stored user.
//
// An unknown username and a wrong password both return (false, nil): nothing
// in the result distinguishes the two, so callers cannot be used to enumerate
// accounts. The lookup is a case-sensitive exact match. No state is kept
// between calls; there is no session, lockout, or rate limit.
func (a *Authenticator) Authenticate(username, password string) (bool, error) {
	var user models.User
	err := a.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return user.PasswordHash == Digest(password), nil
}
