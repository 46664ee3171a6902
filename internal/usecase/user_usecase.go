package usecase

import (
	"context"

	"containerview/internal/domain/entity"
)

// RegisterUserInput defines the data required to create a credential record.
type RegisterUserInput struct {
	Identity         string
	FirstName        string
	LastName         string
	Email            string
	Password         string
	Role             entity.Role
	TwoFactorEnabled bool
}

// UserUsecase defines credential record management.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Me(ctx context.Context, identity string) (*entity.User, error)
	// BootstrapAdmin creates the configured administrator when no ADMIN exists.
	BootstrapAdmin(ctx context.Context) error
}
