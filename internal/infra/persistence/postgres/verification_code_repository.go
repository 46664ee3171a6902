package postgres

import (
	"context"
	"time"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/errors"
	"containerview/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verificationCodeRepository implements repository.VerificationCodeRepository.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

// Create stores a new code. A second code for the same identity violates the unique index.
func (repo *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	codeM := fromVerificationCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestByTaxID returns the identity's code with the latest expiry.
func (repo *verificationCodeRepository) FindLatestByTaxID(ctx context.Context, taxID string) (*entity.VerificationCode, error) {
	var codeM model.VerificationCodeModel
	err := repo.db.WithContext(ctx).
		Where("tax_id = ?", taxID).
		Order("expires_at DESC").
		Take(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find verification code")
	}

	return toVerificationCodeDomain(&codeM), nil
}

// DeleteByTaxID removes every code of the identity.
func (repo *verificationCodeRepository) DeleteByTaxID(ctx context.Context, taxID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("tax_id = ?", taxID).
		Delete(&model.VerificationCodeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete verification codes")
	}

	return result.RowsAffected, nil
}

// DeleteByID removes a single code. Deleting a missing code is not an error.
func (repo *verificationCodeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VerificationCodeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification code")
	}

	return nil
}

// DeleteExpired removes every code whose expiry is at or before now.
func (repo *verificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.VerificationCodeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge expired verification codes")
	}

	return result.RowsAffected, nil
}

func toVerificationCodeDomain(data *model.VerificationCodeModel) *entity.VerificationCode {
	if data == nil {
		return nil
	}

	return &entity.VerificationCode{
		ID:        data.ID,
		TaxID:     data.TaxID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromVerificationCodeDomain(data *entity.VerificationCode) *model.VerificationCodeModel {
	if data == nil {
		return nil
	}

	return &model.VerificationCodeModel{
		ID:        data.ID,
		TaxID:     data.TaxID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
