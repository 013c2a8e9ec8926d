package domain

import (
	"strings"
	"time"
)

// User is a registered account that owns readings.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail trims and lowercases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID string
	Email  string
}
