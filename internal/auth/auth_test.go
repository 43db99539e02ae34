package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading-dashboard/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestDigest(t *testing.T) {
	// sha256 of "password", lowercase hex
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		Digest("password"))
	// empty input still digests
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Digest(""))
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Username:     "operator",
		PasswordHash: Digest("hunter2"),
	}).Error)

	a := NewAuthenticator(db)

	testCases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct credentials", "operator", "hunter2", true},
		{"wrong password", "operator", "hunter3", false},
		{"unknown user", "nobody", "hunter2", false},
		{"empty username", "", "hunter2", false},
		{"empty password", "operator", "", false},
		{"username is case-sensitive", "Operator", "hunter2", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := a.Authenticate(tc.username, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestAuthenticateEmptyPasswordUser(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Username:     "blank",
		PasswordHash: Digest(""),
	}).Error)

	a := NewAuthenticator(db)

	ok, err := a.Authenticate("blank", "")
	require.NoError(t, err)
	assert.True(t, ok, "empty password must match its own digest")

	ok, err = a.Authenticate("blank", "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}
