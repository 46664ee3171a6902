// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

// dummySecret is hashed once so unknown identities pay the same bcrypt cost as known ones.
const dummySecret = "container-view/unknown-identity"

type credentialVerifier struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	dummyHash func() string
	logger    *slog.Logger
}

// CredentialVerifierParams holds dependencies for the credential verifier, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewCredentialVerifier builds the primary credential check.
func NewCredentialVerifier(params CredentialVerifierParams) usecase.CredentialVerifier {
	hasher := params.Hasher

	return &credentialVerifier{
		userRepo: params.UserRepo,
		hasher:   hasher,
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(dummySecret)
			if err != nil {
				return ""
			}

			return hash
		}),
		logger: params.Logger,
	}
}

func (v *credentialVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

func (v *credentialVerifier) Verify(ctx context.Context, identity, secret string) (*entity.User, error) {
	if identity == "" || secret == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "identity or secret is empty")
	}

	user, err := v.userRepo.FindByTaxID(ctx, identity)
	if errors.Is(err, repository.ErrUserNotFound) {
		v.hasher.Check(secret, v.dummyHash())

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown identity")
	}
	if err != nil {
		v.log(ctx).Error("Failed to load credential record", slog.String("identity", identity), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load credential record")
	}

	if !v.hasher.Check(secret, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "secret mismatch")
	}

	return user, nil
}
