// Package users implements navigator accounts for Casebook: registration
// with a 4-digit PIN, PIN verification, and issuance of the signed tokens
// the API middleware validates.
package users

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// User represents a registered navigator. The PIN hash never leaves the
// repository layer.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterCommand carries the data needed to create an account.
type RegisterCommand struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

// Validate checks the name and PIN shape before any storage work.
func (c RegisterCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if !pinPattern.MatchString(c.PIN) {
		return ErrInvalidPIN
	}
	return nil
}

// LoginCommand carries credentials for token issuance.
type LoginCommand struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

// TokenResult is a successful login response.
type TokenResult struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}
