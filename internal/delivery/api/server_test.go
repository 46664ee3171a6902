package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"containerview/config"
	apimiddleware "containerview/internal/delivery/api/middleware"
	"containerview/internal/delivery/api/router"
	"containerview/internal/delivery/api/router/handler"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	"containerview/internal/domain/service"
	"containerview/internal/infra/auth"
	"containerview/internal/infra/metrics"
	"containerview/internal/infra/qrcode"
	"containerview/internal/infra/ratelimit"
	"containerview/internal/mocks/memstore"
	"containerview/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminID     = "11111111111"
	inspectorID = "22222222222"
	twoFactorID = "33333333333"
	password    = "Sup3rSecret"
)

// outbox captures delivered verification codes.
type outbox struct {
	mu   sync.Mutex
	sent []service.VerificationMessage
	fail error
}

func (o *outbox) SendVerificationCode(_ context.Context, msg *service.VerificationMessage) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fail != nil {
		return o.fail
	}
	o.sent = append(o.sent, *msg)

	return nil
}

func (o *outbox) last(t *testing.T) service.VerificationMessage {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.sent, "no code delivered")

	return o.sent[len(o.sent)-1]
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.AuthEvent
}

func (p *recordingPublisher) PublishAuthEvent(_ context.Context, event *service.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testServer struct {
	echo      *echo.Echo
	store     *memstore.Store
	outbox    *outbox
	publisher *recordingPublisher
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKey{Session: "session-secret-for-tests", StepUp: "step-up-secret-for-tests"},
		Auth:      &config.AuthConfig{BcryptCost: 4},
		Bootstrap: &config.BootstrapConfig{},
	}
	cfg.ApplyDefaults()
	cfg.Auth.BcryptCost = 4
	cfg.Auth.AttemptLimit.PerMinute = 0
	cfg.Metrics.Enabled = true

	return cfg
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	store.PutUser(&entity.User{TaxID: adminID, FirstName: "Ada", Email: "ada@example.com", PasswordHash: hash, Role: entity.RoleAdmin})
	store.PutUser(&entity.User{TaxID: inspectorID, FirstName: "Ivo", Email: "ivo@example.com", PasswordHash: hash, Role: entity.RoleInspector})
	store.PutUser(&entity.User{TaxID: twoFactorID, FirstName: "Tom", Email: "tom@example.com", PasswordHash: hash, Role: entity.RoleManager, TwoFactorEnabled: true})

	sessionCodec, err := auth.NewSessionTokenCodec(cfg)
	require.NoError(t, err)
	stepUpCodec, err := auth.NewStepUpTokenCodec(cfg)
	require.NoError(t, err)

	box := &outbox{}
	publisher := &recordingPublisher{}
	m := metrics.New()
	totpSvc := auth.NewTOTPService(cfg)

	userRepo := store.UserRepo()
	codes := impl.NewVerificationCodeService(impl.VerificationCodeServiceParams{
		TxManager: store,
		CodeRepo:  store.VerificationCodeRepo(),
		Config:    cfg,
		Logger:    logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		Verifier:     impl.NewCredentialVerifier(impl.CredentialVerifierParams{UserRepo: userRepo, Hasher: hasher, Logger: logger}),
		Codes:        codes,
		UserRepo:     userRepo,
		SessionCodec: sessionCodec,
		StepUpCodec:  stepUpCodec,
		Sender:       box,
		TOTP:         totpSvc,
		Limiter:      ratelimit.NewAttemptLimiter(cfg),
		Metrics:      m,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{UserRepo: userRepo, Hasher: hasher, Config: cfg, Logger: logger})
	totpUC := impl.NewTOTPUsecase(impl.TOTPUsecaseParams{UserRepo: userRepo, TOTP: totpSvc, QRCode: qrcode.NewQRCodeService(cfg), Logger: logger})

	authMiddleware := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
		SessionCodec: sessionCodec,
		UserRepo:     userRepo,
		Logger:       logger,
	})

	e := NewEcho(ServerParams{
		Cfg:            cfg,
		Logger:         logger,
		Metrics:        m,
		AuthMiddleware: authMiddleware,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
			TOTPHandler:    handler.NewTOTPHandler(handler.TOTPHandlerParams{TOTPUC: totpUC}),
			AuthMiddleware: authMiddleware,
			Metrics:        m,
			Config:         cfg,
		},
	})

	return &testServer{echo: e, store: store, outbox: box, publisher: publisher}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body any, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func (s *testServer) login(t *testing.T, identity string) handler.LoginResponse {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Identity: identity, Secret: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[handler.LoginResponse](t, env.Data)
}

func TestScenarioA_LoginWithoutSecondFactor(t *testing.T) {
	s := newTestServer(t)

	login := s.login(t, inspectorID)
	assert.False(t, login.SecondFactorEnabled)
	assert.Equal(t, inspectorID, login.Identity)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), login.ExpiresAt, time.Minute)

	rec, env := s.do(t, http.MethodGet, "/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[handler.UserResponse](t, env.Data)
	assert.Equal(t, entity.RoleInspector, me.Role)
	assert.Equal(t, entity.Permissions{entity.PermissionInspector}, me.Permissions)
}

func TestScenarioB_LoginWithEmailCode(t *testing.T) {
	s := newTestServer(t)

	login := s.login(t, twoFactorID)
	require.True(t, login.SecondFactorEnabled)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), login.ExpiresAt, time.Minute)

	msg := s.outbox.last(t)
	assert.Equal(t, "tom@example.com", msg.To)
	assert.Len(t, msg.Code, 6)
	assert.Equal(t, 5, msg.ExpiryMinutes)

	// The step-up token is not a session token.
	rec, _ := s.do(t, http.MethodGet, "/auth/me", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrong := "000000"
	if msg.Code == wrong {
		wrong = "999999"
	}
	rec, env := s.do(t, http.MethodPost, "/auth/verify", "", handler.VerifyRequest{StepUpToken: login.Token, Code: wrong})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/auth/verify", "", handler.VerifyRequest{StepUpToken: login.Token, Code: msg.Code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	verified := decode[handler.VerifyResponse](t, env.Data)
	assert.Equal(t, "authenticated", verified.Status)
	assert.Equal(t, twoFactorID, verified.Identity)

	rec, _ = s.do(t, http.MethodGet, "/auth/me", verified.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Consumed.
	rec, _ = s.do(t, http.MethodPost, "/auth/verify", "", handler.VerifyRequest{StepUpToken: login.Token, Code: msg.Code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_StepUpTokenFromBearerHeader(t *testing.T) {
	s := newTestServer(t)

	login := s.login(t, twoFactorID)
	msg := s.outbox.last(t)

	rec, env := s.do(t, http.MethodPost, "/auth/verify", login.Token, map[string]string{"code": msg.Code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "authenticated", decode[handler.VerifyResponse](t, env.Data).Status)
}

func TestScenarioC_FailuresAreIndistinguishable(t *testing.T) {
	s := newTestServer(t)

	sessionLogin := s.login(t, inspectorID)
	stepUpLogin := s.login(t, twoFactorID)

	failures := map[string]func() *httptest.ResponseRecorder{
		"wrong secret": func() *httptest.ResponseRecorder {
			rec, _ := s.do(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Identity: inspectorID, Secret: "wrong-secret1"})
			return rec
		},
		"unknown identity": func() *httptest.ResponseRecorder {
			rec, _ := s.do(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Identity: "99999999999", Secret: "any-secret1"})
			return rec
		},
		"session token used as step-up token": func() *httptest.ResponseRecorder {
			rec, _ := s.do(t, http.MethodPost, "/auth/verify", "", handler.VerifyRequest{StepUpToken: sessionLogin.Token, Code: "123456"})
			return rec
		},
		"wrong code": func() *httptest.ResponseRecorder {
			rec, _ := s.do(t, http.MethodPost, "/auth/verify", "", handler.VerifyRequest{StepUpToken: stepUpLogin.Token, Code: "12345"})
			return rec
		},
	}

	for name, call := range failures {
		t.Run(name, func(t *testing.T) {
			rec := call()
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			delete(body, "meta")
			assert.Equal(t, map[string]any{
				"error": map[string]any{
					"code":    "AUTHENTICATION_FAILED",
					"message": "authentication failed",
				},
			}, body)
		})
	}
}

func TestLogin_DeliveryFailureLooksLikeAnyAuthFailure(t *testing.T) {
	s := newTestServer(t)
	s.outbox.fail = assert.AnError

	rec, env := s.do(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Identity: twoFactorID, Secret: password})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", env.Error.Code)
	assert.Empty(t, s.store.Codes(twoFactorID), "undelivered code is revoked")
}

func TestRegister_RequiresAdminPermission(t *testing.T) {
	s := newTestServer(t)
	body := handler.RegisterRequest{
		Identity:  "44444444444",
		FirstName: "Nina",
		Email:     "Nina@Example.com",
		Password:  "An0therPass",
		Role:      "manager",
	}

	rec, _ := s.do(t, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	inspector := s.login(t, inspectorID)
	rec, env := s.do(t, http.MethodPost, "/auth/register", inspector.Token, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	admin := s.login(t, adminID)
	rec, env = s.do(t, http.MethodPost, "/auth/register", admin.Token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.UserResponse](t, env.Data)
	assert.Equal(t, entity.RoleManager, created.Role)
	assert.Equal(t, "nina@example.com", created.Email)

	rec, env = s.do(t, http.MethodPost, "/auth/register", admin.Token, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
}

func TestRegister_ValidationErrors(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminID)

	rec, env := s.do(t, http.MethodPost, "/auth/register", admin.Token, handler.RegisterRequest{
		Identity:  "12AB",
		FirstName: "Nina",
		Email:     "not-an-email",
		Password:  "An0therPass",
		Role:      "MANAGER",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "identity must contain 11 or 14 digits")
	assert.Contains(t, env.Error.Details, "email must be a valid email address")
}

func TestTOTPEnrollmentAndVerification(t *testing.T) {
	s := newTestServer(t)
	session := s.login(t, inspectorID)

	rec, env := s.do(t, http.MethodPost, "/auth/totp/setup", session.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	setup := decode[handler.TOTPSetupResponse](t, env.Data)
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))
	assert.Contains(t, setup.OTPAuthURL, "otpauth://totp/")

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)

	rec, _ = s.do(t, http.MethodPost, "/auth/totp/enable", session.Token, map[string]string{"code": code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Turn on the second factor and complete a login with the authenticator.
	user, err := s.store.UserRepo().FindByTaxID(context.Background(), inspectorID)
	require.NoError(t, err)
	user.TwoFactorEnabled = true
	s.store.PutUser(user)

	stepUp := s.login(t, inspectorID)
	require.True(t, stepUp.SecondFactorEnabled)

	rec, env = s.do(t, http.MethodPost, "/auth/verify/totp", "", handler.VerifyRequest{StepUpToken: stepUp.Token, Code: code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "authenticated", decode[handler.VerifyResponse](t, env.Data).Status)

	// Replacing the enabled authenticator needs a code from it.
	rec, env = s.do(t, http.MethodPost, "/auth/totp/setup", session.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TOTP_CODE_INVALID", env.Error.Code)

	current, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	rec, env = s.do(t, http.MethodPost, "/auth/totp/setup", session.Token, handler.TOTPSetupRequest{Code: current})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEqual(t, setup.Secret, decode[handler.TOTPSetupResponse](t, env.Data).Secret)
}

func TestAuthenticatedRoutesRejectAnonymousCallers(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/auth/totp/setup"},
		{http.MethodPost, "/auth/totp/enable"},
	} {
		rec, env := s.do(t, tc.method, tc.path, "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.path)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code, tc.path)
	}
}

func TestDeletedUserLosesAccess(t *testing.T) {
	s := newTestServer(t)
	session := s.login(t, inspectorID)

	s.store.DeleteUser(inspectorID)

	rec, _ := s.do(t, http.MethodGet, "/auth/me", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestIDIsEchoedAndPublished(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Identity: inspectorID, Secret: password},
		deliverycontext.HeaderXRequestID, "req-123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", env.Meta.RequestID)

	s.publisher.mu.Lock()
	defer s.publisher.mu.Unlock()
	require.Len(t, s.publisher.events, 1)
	assert.Equal(t, service.AuthEventLoginSucceeded, s.publisher.events[0].Type)
	assert.Equal(t, "req-123", s.publisher.events[0].RequestID)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	s.login(t, inspectorID)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	s.echo.ServeHTTP(metricsRec, req)

	require.Equal(t, http.StatusOK, metricsRec.Code)
	body := metricsRec.Body.String()
	assert.Contains(t, body, `containerview_auth_login_attempts_total{outcome="success"} 1`)
	assert.Contains(t, body, `path="/auth/login"`)
}
