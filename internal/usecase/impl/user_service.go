package impl

import (
	"context"
	"log/slog"
	"strings"

	"containerview/config"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	bootstrap *config.BootstrapConfig
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &userService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		bootstrap: bootstrap,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a credential record with a hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of ADMIN, MANAGER, INSPECTOR")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("identity", input.Identity))

		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		TaxID:            strings.TrimSpace(input.Identity),
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Email:            strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:     hash,
		Role:             input.Role,
		TwoFactorEnabled: input.TwoFactorEnabled,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered",
		slog.String("identity", user.TaxID),
		slog.String("role", user.Role.String()),
		slog.Bool("twoFactorEnabled", user.TwoFactorEnabled),
	)

	return user, nil
}

// Me loads the credential record of the authenticated identity.
func (srv *userService) Me(ctx context.Context, identity string) (*entity.User, error) {
	user, err := srv.userRepo.FindByTaxID(ctx, identity)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, identity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func (srv *userService) BootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || !srv.bootstrap.Admin.Enabled {
		return nil
	}

	exists, err := srv.userRepo.ExistsByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to check for an administrator")
	}
	if exists {
		srv.log(ctx).Debug("Administrator already present, skipping bootstrap")

		return nil
	}

	admin := srv.bootstrap.Admin
	user, err := srv.Register(ctx, &usecase.RegisterUserInput{
		Identity:  admin.TaxID,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  admin.Password,
		Role:      entity.RoleAdmin,
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		srv.log(ctx).Warn("Bootstrap administrator identity is taken by a non-admin account", slog.String("identity", admin.TaxID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to bootstrap administrator")
	}

	srv.log(ctx).Info("Bootstrap administrator created", slog.String("identity", user.TaxID))

	return nil
}
