package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"containerview/config"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	"containerview/internal/domain/repository"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

const (
	codeFloor = 100000
	codeSpan  = 900000

	defaultVerificationCodeTTL = 5 * time.Minute
)

// generateCode returns a uniformly random six digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random code")
	}

	return strconv.FormatInt(n.Int64()+codeFloor, 10), nil
}

type verificationCodeService struct {
	txManager repository.TransactionManager
	codeRepo  repository.VerificationCodeRepository
	ttl       time.Duration
	now       func() time.Time
	generate  func() (string, error)
	logger    *slog.Logger
}

// VerificationCodeServiceParams holds dependencies for the code store, injected by Fx.
type VerificationCodeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CodeRepo  repository.VerificationCodeRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationCodeService builds the one-time code store.
func NewVerificationCodeService(params VerificationCodeServiceParams) usecase.VerificationCodeUsecase {
	ttl := defaultVerificationCodeTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationCodeTTL > 0 {
		ttl = params.Config.Auth.VerificationCodeTTL
	}

	return &verificationCodeService{
		txManager: params.TxManager,
		codeRepo:  params.CodeRepo,
		ttl:       ttl,
		now:       time.Now,
		generate:  generateCode,
		logger:    params.Logger,
	}
}

func (srv *verificationCodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue replaces any code of the identity with a fresh one. The identity's user
// row stays locked for the whole delete-then-insert.
func (srv *verificationCodeService) Issue(ctx context.Context, identity string) (*entity.VerificationCode, error) {
	value, err := srv.generate()
	if err != nil {
		return nil, err
	}

	now := srv.now()
	code := &entity.VerificationCode{
		TaxID:     identity,
		Code:      value,
		ExpiresAt: now.Add(srv.ttl),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().LockByTaxID(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to lock identity")
		}

		codeRepo := repoFactory.VerificationCodeRepo()
		replaced, err := codeRepo.DeleteByTaxID(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to delete previous codes")
		}
		if replaced > 0 {
			srv.log(ctx).Debug("Replaced previous verification code", slog.String("identity", identity))
		}

		return errors.Wrap(codeRepo.Create(ctx, code), "failed to store verification code")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification code")
	}

	return code, nil
}

// Verify consumes a matching unexpired code. Expired codes are deleted on sight.
func (srv *verificationCodeService) Verify(ctx context.Context, identity, code string) (bool, error) {
	if identity == "" || code == "" {
		return false, nil
	}

	var matched bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().LockByTaxID(ctx, identity); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to lock identity")
		}

		codeRepo := repoFactory.VerificationCodeRepo()
		stored, err := codeRepo.FindLatestByTaxID(ctx, identity)
		if errors.Is(err, repository.ErrVerificationCodeNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load verification code")
		}

		if stored.IsExpired(srv.now()) {
			return errors.Wrap(codeRepo.DeleteByID(ctx, stored.ID), "failed to delete expired code")
		}

		if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
			return nil
		}

		if err := codeRepo.DeleteByID(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to consume verification code")
		}
		matched = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to verify code")
	}

	return matched, nil
}

// Revoke takes the same identity lock as Issue, then deletes the code by ID.
// A code issued after this one has a new ID and is left alone.
func (srv *verificationCodeService) Revoke(ctx context.Context, code *entity.VerificationCode) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().LockByTaxID(ctx, code.TaxID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to lock identity")
		}

		return errors.Wrap(repoFactory.VerificationCodeRepo().DeleteByID(ctx, code.ID), "failed to delete code")
	})

	return errors.Wrap(err, "failed to revoke verification code")
}

func (srv *verificationCodeService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := srv.codeRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired codes")
	}

	return purged, nil
}
