// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"containerview/internal/domain/entity"
	"containerview/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for credential record persistence.
type UserRepository interface {
	// FindByTaxID retrieves a single user by identity.
	FindByTaxID(ctx context.Context, taxID string) (*entity.User, error)

	// ExistsByRole reports whether at least one user holds the role.
	ExistsByRole(ctx context.Context, role entity.Role) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// LockByTaxID takes a row lock on the user until the surrounding transaction ends.
	// It serializes per-identity writes such as verification code replacement.
	LockByTaxID(ctx context.Context, taxID string) error
}
