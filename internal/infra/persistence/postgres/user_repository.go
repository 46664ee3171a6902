package postgres

import (
	"context"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/errors"
	"containerview/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByTaxID retrieves a single user by identity.
func (repo *userRepository) FindByTaxID(ctx context.Context, taxID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("tax_id = ?", taxID).
		Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by tax id")
	}

	return toUserDomain(&userM), nil
}

// ExistsByRole reports whether any user holds the role.
func (repo *userRepository) ExistsByRole(ctx context.Context, role entity.Role) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to count users by role")
	}

	return count > 0, nil
}

// Create persists a new user and fills in its generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage(violatedConstraint(err))
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing or invalid user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the mutable columns of an existing user. The tax ID never changes.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"first_name":         user.FirstName,
			"last_name":          user.LastName,
			"email":              user.Email,
			"password_hash":      user.PasswordHash,
			"role":               user.Role.String(),
			"two_factor_enabled": user.TwoFactorEnabled,
			"totp_secret":        user.TOTPSecret,
			"totp_enabled":       user.TOTPEnabled,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage(violatedConstraint(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// LockByTaxID selects the user row FOR UPDATE. Only meaningful inside a transaction.
func (repo *userRepository) LockByTaxID(ctx context.Context, taxID string) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("tax_id = ?", taxID).
		Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to lock user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		TaxID:            data.TaxID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Role:             entity.Role(data.Role),
		TwoFactorEnabled: data.TwoFactorEnabled,
		TOTPSecret:       data.TOTPSecret,
		TOTPEnabled:      data.TOTPEnabled,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		TaxID:            data.TaxID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Role:             data.Role.String(),
		TwoFactorEnabled: data.TwoFactorEnabled,
		TOTPSecret:       data.TOTPSecret,
		TOTPEnabled:      data.TOTPEnabled,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
