package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/infra/pubsub"
	mockUsecase "containerview/internal/mocks/usecase"
	"containerview/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, env, provider string) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env
	auditUC := mockUsecase.NewMockAuditUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUC: auditUC,
	}), auditUC
}

func pushBody(t *testing.T, event *service.AuthEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/auth-audit-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec.Code
}

func testEvent() *service.AuthEvent {
	return &service.AuthEvent{
		EventID:    "evt-1",
		Type:       service.AuthEventLoginSucceeded,
		Identity:   "12345678901",
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandlePush_RecordsEvent(t *testing.T) {
	h, auditUC := newTestPushHandler(t, config.EnvLocal, pubsub.ProviderLocal)
	auditUC.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *service.AuthEvent) bool {
		return e.EventID == "evt-1" && e.Type == service.AuthEventLoginSucceeded && e.RequestID == "req-attr"
	}), "msg-1").Return(nil)

	code := servePush(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-attr"}), nil)

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_MalformedPayloads(t *testing.T) {
	h, _ := newTestPushHandler(t, config.EnvLocal, pubsub.ProviderLocal)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`, nil))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`, nil))

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil))
}

func TestHandlePush_InvalidEventIsAcknowledged(t *testing.T) {
	h, auditUC := newTestPushHandler(t, config.EnvLocal, pubsub.ProviderLocal)
	auditUC.EXPECT().Record(mock.Anything, mock.Anything, "msg-1").
		Return(errors.Wrap(usecase.ErrInvalidAuditEvent, "missing event_id"))

	assert.Equal(t, http.StatusOK, servePush(h, pushBody(t, &service.AuthEvent{}, nil), nil))
}

func TestHandlePush_StorageFailureIsRetried(t *testing.T) {
	h, auditUC := newTestPushHandler(t, config.EnvLocal, pubsub.ProviderLocal)
	auditUC.EXPECT().Record(mock.Anything, mock.Anything, "msg-1").Return(errors.New("connection reset"))

	assert.Equal(t, http.StatusServiceUnavailable, servePush(h, pushBody(t, testEvent(), nil), nil))
}

func TestHandlePush_GooglePushAuthentication(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		validErr error
		want     int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", validErr: errors.New("bad signature"), want: http.StatusUnauthorized},
		{name: "foreign issuer", header: "Bearer ok", payload: &idtoken.Payload{Issuer: "https://evil.example.com"}, want: http.StatusUnauthorized},
		{name: "unverified email", header: "Bearer ok", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer ok", payload: &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUC := newTestPushHandler(t, "production", pubsub.ProviderGoogle)
			require.True(t, h.verifyPushAuth)
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.validErr
			}
			if tt.want == http.StatusOK {
				auditUC.EXPECT().Record(mock.Anything, mock.Anything, "msg-1").Return(nil)
			}

			headers := map[string]string{}
			if tt.header != "" {
				headers[echo.HeaderAuthorization] = tt.header
			}

			assert.Equal(t, tt.want, servePush(h, pushBody(t, testEvent(), nil), headers))
		})
	}
}

func TestNewPushHandler_SkipsAuthOutsideGoogle(t *testing.T) {
	local, _ := newTestPushHandler(t, "production", pubsub.ProviderLocal)
	assert.False(t, local.verifyPushAuth)

	dev, _ := newTestPushHandler(t, config.EnvLocal, pubsub.ProviderGoogle)
	assert.False(t, dev.verifyPushAuth)
}
