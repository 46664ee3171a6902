package impl

import (
	"context"
	"log/slog"

	deliverycontext "containerview/internal/delivery/context"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

type totpUsecase struct {
	userRepo repository.UserRepository
	totp     service.TOTPService
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// TOTPUsecaseParams holds dependencies for authenticator enrollment, injected by Fx.
type TOTPUsecaseParams struct {
	fx.In

	UserRepo repository.UserRepository
	TOTP     service.TOTPService
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewTOTPUsecase builds the authenticator enrollment flow.
func NewTOTPUsecase(params TOTPUsecaseParams) usecase.TOTPUsecase {
	return &totpUsecase{
		userRepo: params.UserRepo,
		totp:     params.TOTP,
		qrcode:   params.QRCode,
		logger:   params.Logger,
	}
}

func (uc *totpUsecase) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, uc.logger)
}

// Setup replaces any previous enrollment; the new secret stays inactive until Enable.
func (uc *totpUsecase) Setup(ctx context.Context, identity, currentCode string) (*usecase.TOTPSetupOutput, error) {
	user, err := uc.userRepo.FindByTaxID(ctx, identity)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, identity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	// A stolen session alone must not swap out a working authenticator.
	if user.TOTPEnabled && (currentCode == "" || !uc.totp.Validate(currentCode, user.TOTPSecret)) {
		uc.log(ctx).Warn("Authenticator replacement without a valid current code", slog.String("identity", identity))

		return nil, errors.Wrap(domainerrors.ErrTOTPCodeInvalid, "current authenticator code required")
	}

	key, err := uc.totp.GenerateKey(user.TaxID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate authenticator secret")
	}

	png, err := uc.qrcode.EncodePNG(key.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render enrollment QR code")
	}

	user.TOTPSecret = key.Secret
	user.TOTPEnabled = false
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store authenticator secret")
	}

	uc.log(ctx).Info("Authenticator enrollment started", slog.String("identity", identity))

	return &usecase.TOTPSetupOutput{
		Secret:     key.Secret,
		OTPAuthURL: key.URL,
		QRCodePNG:  png,
	}, nil
}

func (uc *totpUsecase) Enable(ctx context.Context, identity, code string) error {
	user, err := uc.userRepo.FindByTaxID(ctx, identity)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, identity)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}

	if user.TOTPSecret == "" {
		return domainerrors.ErrTOTPNotEnrolled
	}
	if !uc.totp.Validate(code, user.TOTPSecret) {
		uc.log(ctx).Warn("Authenticator confirmation code rejected", slog.String("identity", identity))

		return domainerrors.ErrTOTPCodeInvalid
	}

	user.TOTPEnabled = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to enable authenticator")
	}

	uc.log(ctx).Info("Authenticator enabled", slog.String("identity", identity))

	return nil
}
