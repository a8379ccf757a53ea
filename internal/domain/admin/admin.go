// Package admin models the back-office account. The office runs with a
// single administrator registered once at setup time.
package admin

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LooksLikeEmail decides whether a login identifier should be matched
// against the email or the username column.
func LooksLikeEmail(identifier string) bool {
	return emailPattern.MatchString(identifier)
}
