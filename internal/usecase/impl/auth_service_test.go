package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	mockRepo "containerview/internal/mocks/repository"
	mockSvc "containerview/internal/mocks/service"
	mockUsecase "containerview/internal/mocks/usecase"
	"containerview/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	verifier     *mockUsecase.MockCredentialVerifier
	codes        *mockUsecase.MockVerificationCodeUsecase
	userRepo     *mockRepo.MockUserRepository
	sessionCodec *mockSvc.MockSessionTokenCodec
	stepUpCodec  *mockSvc.MockStepUpTokenCodec
	sender       *mockSvc.MockCodeSender
	totp         *mockSvc.MockTOTPService
	limiter      *mockSvc.MockAttemptLimiter
	metrics      *mockSvc.MockAuthMetrics
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *authFixtures) {
	t.Helper()

	f := &authFixtures{
		verifier:     mockUsecase.NewMockCredentialVerifier(t),
		codes:        mockUsecase.NewMockVerificationCodeUsecase(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionCodec: mockSvc.NewMockSessionTokenCodec(t),
		stepUpCodec:  mockSvc.NewMockStepUpTokenCodec(t),
		sender:       mockSvc.NewMockCodeSender(t),
		totp:         mockSvc.NewMockTOTPService(t),
		limiter:      mockSvc.NewMockAttemptLimiter(t),
		metrics:      mockSvc.NewMockAuthMetrics(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv := NewAuthService(AuthServiceParams{
		Verifier:     f.verifier,
		Codes:        f.codes,
		UserRepo:     f.userRepo,
		SessionCodec: f.sessionCodec,
		StepUpCodec:  f.stepUpCodec,
		Sender:       f.sender,
		TOTP:         f.totp,
		Limiter:      f.limiter,
		Metrics:      f.metrics,
		Publisher:    f.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return testNow }

	return srv, f
}

func (f *authFixtures) expectEvent(eventType service.AuthEventType) {
	f.publisher.EXPECT().
		PublishAuthEvent(mock.Anything, mock.MatchedBy(func(e *service.AuthEvent) bool {
			return e.Type == eventType && e.EventID != "" && e.OccurredAt.Equal(testNow)
		})).
		Return(nil).
		Once()
}

func newTestUser(twoFactor bool) *entity.User {
	return &entity.User{
		TaxID:            testIdentity,
		FirstName:        "Ana",
		Email:            testEmail,
		PasswordHash:     "hash",
		Role:             entity.RoleManager,
		TwoFactorEnabled: twoFactor,
	}
}

func TestAuthService_Login_WithoutSecondFactor(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := testNow.Add(2 * time.Hour)

	f.limiter.EXPECT().Allow("login:" + testIdentity).Return(true)
	f.verifier.EXPECT().Verify(ctx, testIdentity, "s3cret-pass").Return(newTestUser(false), nil)
	f.limiter.EXPECT().Reset("login:" + testIdentity).Return()
	f.sessionCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "session-token", Subject: testIdentity, ExpiresAt: expiresAt}, nil)
	f.metrics.EXPECT().LoginAttempt(service.OutcomeSuccess).Return()
	f.expectEvent(service.AuthEventLoginSucceeded)

	out, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "s3cret-pass", RemoteIP: "10.0.0.1"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.LoginOutput{
		Identity:            testIdentity,
		SecondFactorEnabled: false,
		Token:               "session-token",
		ExpiresAt:           expiresAt,
	}, out)
}

func TestAuthService_Login_WithSecondFactor(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser(true)

	f.limiter.EXPECT().Allow("login:" + testIdentity).Return(true)
	f.verifier.EXPECT().Verify(ctx, testIdentity, "s3cret-pass").Return(user, nil)
	f.limiter.EXPECT().Reset("login:" + testIdentity).Return()
	f.stepUpCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "step-up-token", ExpiresAt: testNow.Add(10 * time.Minute)}, nil)
	f.codes.EXPECT().Issue(ctx, testIdentity).Return(&entity.VerificationCode{TaxID: testIdentity, Code: "482913"}, nil)
	f.sender.EXPECT().SendVerificationCode(ctx, &service.VerificationMessage{
		To:            testEmail,
		DisplayName:   "Ana",
		Code:          "482913",
		ExpiryMinutes: 5,
	}).Return(nil)
	f.metrics.EXPECT().CodeIssued().Return()
	f.metrics.EXPECT().LoginAttempt(service.OutcomeStepUp).Return()
	f.expectEvent(service.AuthEventStepUpRequired)

	out, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "s3cret-pass"})

	require.NoError(t, err)
	assert.True(t, out.SecondFactorEnabled)
	assert.Equal(t, "step-up-token", out.Token)
	f.sessionCodec.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_DeliveryFailureRevokesCode(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow("login:" + testIdentity).Return(true)
	f.verifier.EXPECT().Verify(ctx, testIdentity, "s3cret-pass").Return(newTestUser(true), nil)
	f.limiter.EXPECT().Reset("login:" + testIdentity).Return()
	f.stepUpCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "step-up-token"}, nil)
	issued := &entity.VerificationCode{ID: uuid.New(), TaxID: testIdentity, Code: "482913"}
	f.codes.EXPECT().Issue(ctx, testIdentity).Return(issued, nil)
	f.sender.EXPECT().SendVerificationCode(ctx, mock.Anything).Return(errors.New("smtp: 550 mailbox unavailable"))
	f.metrics.EXPECT().CodeDeliveryFailed().Return()
	f.expectEvent(service.AuthEventCodeDeliveryFailed)
	f.codes.EXPECT().Revoke(ctx, issued).Return(nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "s3cret-pass"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCodeDeliveryFailed)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow("login:" + testIdentity).Return(true)
	f.verifier.EXPECT().Verify(ctx, testIdentity, "wrong").Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "secret mismatch"))
	f.metrics.EXPECT().LoginAttempt(service.OutcomeFailure).Return()
	f.expectEvent(service.AuthEventLoginFailed)

	out, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "wrong"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedIdentitySkipsLimiter(t *testing.T) {
	tests := []struct {
		name     string
		identity string
	}{
		{name: "blank", identity: ""},
		{name: "longer than a company tax number", identity: strings.Repeat("9", 90*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := createTestAuthService(t)
			ctx := context.Background()

			f.metrics.EXPECT().LoginAttempt(service.OutcomeFailure).Return()

			out, err := srv.Login(ctx, &usecase.LoginInput{Identity: tt.identity, Secret: "s3cret-pass"})

			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			f.limiter.AssertNotCalled(t, "Allow", mock.Anything)
			f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow("login:" + testIdentity).Return(false)
	f.metrics.EXPECT().LoginAttempt(service.OutcomeThrottled).Return()
	f.expectEvent(service.AuthEventAttemptsThrottled)

	_, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "s3cret-pass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_PublisherFailureDoesNotChangeOutcome(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.limiter.EXPECT().Allow(mock.Anything).Return(true)
	f.verifier.EXPECT().Verify(ctx, testIdentity, "s3cret-pass").Return(newTestUser(false), nil)
	f.limiter.EXPECT().Reset(mock.Anything).Return()
	f.sessionCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "session-token"}, nil)
	f.metrics.EXPECT().LoginAttempt(service.OutcomeSuccess).Return()
	f.publisher.EXPECT().PublishAuthEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	out, err := srv.Login(ctx, &usecase.LoginInput{Identity: testIdentity, Secret: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
}

func TestAuthService_Verify_Success(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := testNow.Add(2 * time.Hour)

	f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
	f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(true)
	f.userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(newTestUser(true), nil)
	f.codes.EXPECT().Verify(ctx, testIdentity, "482913").Return(true, nil)
	f.limiter.EXPECT().Reset("verify:" + testIdentity).Return()
	f.sessionCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "session-token", ExpiresAt: expiresAt}, nil)
	f.metrics.EXPECT().VerificationAttempt(usecase.MethodEmail, service.OutcomeSuccess).Return()
	f.expectEvent(service.AuthEventVerificationSucceeded)

	out, err := srv.Verify(ctx, &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "482913"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.VerifyOutput{
		Identity:  testIdentity,
		Token:     "session-token",
		ExpiresAt: expiresAt,
		Status:    usecase.StatusAuthenticated,
	}, out)
}

func TestAuthService_Verify_InvalidStepUpToken(t *testing.T) {
	srv, f := createTestAuthService(t)

	f.stepUpCodec.EXPECT().Validate("session-token").Return("", service.ErrInvalidToken)
	f.metrics.EXPECT().VerificationAttempt(usecase.MethodEmail, service.OutcomeFailure).Return()

	_, err := srv.Verify(context.Background(), &usecase.VerifyInput{StepUpToken: "session-token", Code: "482913"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
	f.codes.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Verify_WrongCode(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
	f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(true)
	f.userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(newTestUser(true), nil)
	f.codes.EXPECT().Verify(ctx, testIdentity, "000000").Return(false, nil)
	f.metrics.EXPECT().VerificationAttempt(usecase.MethodEmail, service.OutcomeFailure).Return()
	f.expectEvent(service.AuthEventVerificationFailed)

	_, err := srv.Verify(ctx, &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "000000"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredCode)
}

func TestAuthService_Verify_Throttled(t *testing.T) {
	srv, f := createTestAuthService(t)

	f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
	f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(false)
	f.metrics.EXPECT().VerificationAttempt(usecase.MethodEmail, service.OutcomeThrottled).Return()
	f.expectEvent(service.AuthEventAttemptsThrottled)

	_, err := srv.Verify(context.Background(), &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "482913"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredCode)
}

func TestAuthService_Verify_DeletedUser(t *testing.T) {
	srv, f := createTestAuthService(t)
	ctx := context.Background()

	f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
	f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(true)
	f.userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(nil, repository.ErrUserNotFound)
	f.metrics.EXPECT().VerificationAttempt(usecase.MethodEmail, service.OutcomeFailure).Return()

	_, err := srv.Verify(ctx, &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "482913"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}

func TestAuthService_VerifyTOTP(t *testing.T) {
	enrolled := newTestUser(true)
	enrolled.TOTPSecret = "JBSWY3DPEHPK3PXP"
	enrolled.TOTPEnabled = true

	pending := newTestUser(true)
	pending.TOTPSecret = "JBSWY3DPEHPK3PXP"

	t.Run("enrolled user with valid code", func(t *testing.T) {
		srv, f := createTestAuthService(t)
		ctx := context.Background()

		f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
		f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(true)
		f.userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(enrolled, nil)
		f.totp.EXPECT().Validate("123456", "JBSWY3DPEHPK3PXP").Return(true)
		f.limiter.EXPECT().Reset("verify:" + testIdentity).Return()
		f.sessionCodec.EXPECT().Issue(testIdentity).Return(&service.IssuedToken{Token: "session-token"}, nil)
		f.metrics.EXPECT().VerificationAttempt(usecase.MethodTOTP, service.OutcomeSuccess).Return()
		f.expectEvent(service.AuthEventVerificationSucceeded)

		out, err := srv.VerifyTOTP(ctx, &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "123456"})

		require.NoError(t, err)
		assert.Equal(t, usecase.StatusAuthenticated, out.Status)
	})

	t.Run("unconfirmed enrollment always fails", func(t *testing.T) {
		srv, f := createTestAuthService(t)
		ctx := context.Background()

		f.stepUpCodec.EXPECT().Validate("step-up-token").Return(testIdentity, nil)
		f.limiter.EXPECT().Allow("verify:" + testIdentity).Return(true)
		f.userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(pending, nil)
		f.metrics.EXPECT().VerificationAttempt(usecase.MethodTOTP, service.OutcomeFailure).Return()
		f.expectEvent(service.AuthEventVerificationFailed)

		_, err := srv.VerifyTOTP(ctx, &usecase.VerifyInput{StepUpToken: "step-up-token", Code: "123456"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredCode)
		f.totp.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	})
}
