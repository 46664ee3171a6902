package impl

import (
	"context"
	"log/slog"
	"time"

	"containerview/config"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const eventPublishTimeout = 3 * time.Second

type authService struct {
	verifier     usecase.CredentialVerifier
	codes        usecase.VerificationCodeUsecase
	userRepo     repository.UserRepository
	sessionCodec service.SessionTokenCodec
	stepUpCodec  service.StepUpTokenCodec
	sender       service.CodeSender
	totp         service.TOTPService
	limiter      service.AttemptLimiter
	metrics      service.AuthMetrics
	publisher    service.EventPublisher
	codeTTL      time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier     usecase.CredentialVerifier
	Codes        usecase.VerificationCodeUsecase
	UserRepo     repository.UserRepository
	SessionCodec service.SessionTokenCodec
	StepUpCodec  service.StepUpTokenCodec
	Sender       service.CodeSender
	TOTP         service.TOTPService
	Limiter      service.AttemptLimiter
	Metrics      service.AuthMetrics
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService builds the login and step-up orchestrator.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	codeTTL := defaultVerificationCodeTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationCodeTTL > 0 {
		codeTTL = params.Config.Auth.VerificationCodeTTL
	}

	return &authService{
		verifier:     params.Verifier,
		codes:        params.Codes,
		userRepo:     params.UserRepo,
		sessionCodec: params.SessionCodec,
		stepUpCodec:  params.StepUpCodec,
		sender:       params.Sender,
		totp:         params.TOTP,
		limiter:      params.Limiter,
		metrics:      params.Metrics,
		publisher:    params.Publisher,
		codeTTL:      codeTTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// maxIdentityLength is the longest tax number, a company's 14 digits.
const maxIdentityLength = 14

func loginKey(identity string) string  { return "login:" + identity }
func verifyKey(identity string) string { return "verify:" + identity }

// Login checks the primary credential. Without a second factor it ends the
// flow with a session token; otherwise it sends a code and returns a step-up token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	// Identities no account can have never get a limiter entry.
	if input.Identity == "" || len(input.Identity) > maxIdentityLength {
		srv.log(ctx).Warn("Login rejected for malformed identity",
			slog.Int("identityLength", len(input.Identity)),
			slog.String("remoteIP", input.RemoteIP),
		)
		srv.metrics.LoginAttempt(service.OutcomeFailure)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "malformed identity")
	}

	logger := srv.log(ctx).With(slog.String("identity", input.Identity), slog.String("remoteIP", input.RemoteIP))

	if !srv.limiter.Allow(loginKey(input.Identity)) {
		logger.Warn("Login attempts throttled")
		srv.metrics.LoginAttempt(service.OutcomeThrottled)
		srv.publish(ctx, service.AuthEventAttemptsThrottled, input.Identity, "", input.RemoteIP)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login attempts throttled")
	}

	user, err := srv.verifier.Verify(ctx, input.Identity, input.Secret)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, err
		}
		logger.Warn("Login failed", slog.Any("error", err))
		srv.metrics.LoginAttempt(service.OutcomeFailure)
		srv.publish(ctx, service.AuthEventLoginFailed, input.Identity, "", input.RemoteIP)

		return nil, err
	}
	srv.limiter.Reset(loginKey(input.Identity))

	if !user.TwoFactorEnabled {
		issued, err := srv.sessionCodec.Issue(user.TaxID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue session token")
		}

		logger.Info("Login succeeded")
		srv.metrics.LoginAttempt(service.OutcomeSuccess)
		srv.publish(ctx, service.AuthEventLoginSucceeded, user.TaxID, "", input.RemoteIP)

		return &usecase.LoginOutput{
			Identity:            user.TaxID,
			SecondFactorEnabled: false,
			Token:               issued.Token,
			ExpiresAt:           issued.ExpiresAt,
		}, nil
	}

	stepUp, err := srv.stepUpCodec.Issue(user.TaxID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue step-up token")
	}

	if err := srv.deliverCode(ctx, user, input.RemoteIP); err != nil {
		return nil, err
	}

	logger.Info("Login requires second factor")
	srv.metrics.LoginAttempt(service.OutcomeStepUp)
	srv.publish(ctx, service.AuthEventStepUpRequired, user.TaxID, usecase.MethodEmail, input.RemoteIP)

	return &usecase.LoginOutput{
		Identity:            user.TaxID,
		SecondFactorEnabled: true,
		Token:               stepUp.Token,
		ExpiresAt:           stepUp.ExpiresAt,
	}, nil
}

// deliverCode stores a fresh code and sends it. A failed send revokes the stored code.
func (srv *authService) deliverCode(ctx context.Context, user *entity.User, remoteIP string) error {
	code, err := srv.codes.Issue(ctx, user.TaxID)
	if err != nil {
		return err
	}

	err = srv.sender.SendVerificationCode(ctx, &service.VerificationMessage{
		To:            user.Email,
		DisplayName:   user.FirstName,
		Code:          code.Code,
		ExpiryMinutes: int(srv.codeTTL / time.Minute),
	})
	if err != nil {
		srv.log(ctx).Error("Verification code delivery failed",
			slog.String("identity", user.TaxID),
			slog.String("remoteIP", remoteIP),
			slog.Any("error", err),
		)
		srv.metrics.CodeDeliveryFailed()
		srv.publish(ctx, service.AuthEventCodeDeliveryFailed, user.TaxID, usecase.MethodEmail, remoteIP)

		if revokeErr := srv.codes.Revoke(ctx, code); revokeErr != nil {
			srv.log(ctx).Error("Failed to revoke undelivered code", slog.String("identity", user.TaxID), slog.Any("error", revokeErr))
		}

		return errors.Wrapf(domainerrors.ErrCodeDeliveryFailed, "send failed: %v", err)
	}

	srv.metrics.CodeIssued()

	return nil
}

// Verify completes a pending login with the emailed one-time code.
func (srv *authService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	return srv.completeStepUp(ctx, input, usecase.MethodEmail, func(user *entity.User) (bool, error) {
		return srv.codes.Verify(ctx, user.TaxID, input.Code)
	})
}

// VerifyTOTP completes a pending login with an authenticator app code.
func (srv *authService) VerifyTOTP(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	return srv.completeStepUp(ctx, input, usecase.MethodTOTP, func(user *entity.User) (bool, error) {
		if !user.TOTPEnabled || user.TOTPSecret == "" {
			return false, nil
		}

		return srv.totp.Validate(input.Code, user.TOTPSecret), nil
	})
}

func (srv *authService) completeStepUp(
	ctx context.Context,
	input *usecase.VerifyInput,
	method string,
	checkCode func(user *entity.User) (bool, error),
) (*usecase.VerifyOutput, error) {
	logger := srv.log(ctx).With(slog.String("method", method), slog.String("remoteIP", input.RemoteIP))

	identity, err := srv.stepUpCodec.Validate(input.StepUpToken)
	if err != nil || identity == "" {
		logger.Warn("Step-up token rejected")
		srv.metrics.VerificationAttempt(method, service.OutcomeFailure)

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "step-up token rejected")
	}
	logger = logger.With(slog.String("identity", identity))

	if !srv.limiter.Allow(verifyKey(identity)) {
		logger.Warn("Verification attempts throttled")
		srv.metrics.VerificationAttempt(method, service.OutcomeThrottled)
		srv.publish(ctx, service.AuthEventAttemptsThrottled, identity, method, input.RemoteIP)

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "verification attempts throttled")
	}

	user, err := srv.userRepo.FindByTaxID(ctx, identity)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Warn("Step-up token subject no longer exists")
		srv.metrics.VerificationAttempt(method, service.OutcomeFailure)

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "unknown step-up subject")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential record")
	}

	ok, err := checkCode(user)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("Verification code rejected")
		srv.metrics.VerificationAttempt(method, service.OutcomeFailure)
		srv.publish(ctx, service.AuthEventVerificationFailed, identity, method, input.RemoteIP)

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "code rejected")
	}
	srv.limiter.Reset(verifyKey(identity))

	issued, err := srv.sessionCodec.Issue(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	logger.Info("Second factor verified")
	srv.metrics.VerificationAttempt(method, service.OutcomeSuccess)
	srv.publish(ctx, service.AuthEventVerificationSucceeded, identity, method, input.RemoteIP)

	return &usecase.VerifyOutput{
		Identity:  identity,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Status:    usecase.StatusAuthenticated,
	}, nil
}

// publish is best effort. Audit transport failures never change the auth outcome.
func (srv *authService) publish(ctx context.Context, eventType service.AuthEventType, identity, method, remoteIP string) {
	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		Identity:   identity,
		Method:     method,
		RemoteIP:   remoteIP,
		OccurredAt: srv.now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := srv.publisher.PublishAuthEvent(pubCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
