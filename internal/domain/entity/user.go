// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record of one identity.
type User struct {
	ID               uuid.UUID
	TaxID            string // Identity. Unique and immutable, the subject of every token.
	FirstName        string
	LastName         string
	Email            string // Destination of verification codes.
	PasswordHash     string
	Role             Role
	TwoFactorEnabled bool   // Requires a one-time code after the password check.
	TOTPSecret       string // Base32 authenticator secret, empty until enrollment starts.
	TOTPEnabled      bool   // Set once the first authenticator code is confirmed.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName joins first and last names for greetings.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
