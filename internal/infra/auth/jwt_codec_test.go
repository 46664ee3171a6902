package auth

import (
	"testing"
	"time"

	"containerview/config"
	"containerview/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionSecret = "test_session_secret_key_very_long_for_testing"
	testStepUpSecret  = "test_step_up_secret_key_very_long_for_testing"
	testIdentity      = "12345678901"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestCodecs(clock *fakeClock) (*jwtCodec, *jwtCodec) {
	session := newJWTCodec(SessionIssuer, testSessionSecret, 2*time.Hour, clock.Now)
	stepUp := newJWTCodec(StepUpIssuer, testStepUpSecret, 10*time.Minute, clock.Now)

	return session, stepUp
}

func newTestConfig() *config.Config {
	cfg := &config.Config{SecretKey: config.SecretKey{Session: testSessionSecret, StepUp: testStepUpSecret}}
	cfg.ApplyDefaults()

	return cfg
}

func TestJWTCodec_IssueAndValidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	session, _ := newTestCodecs(clock)

	issued, err := session.Issue(testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, testIdentity, issued.Subject)
	assert.Equal(t, clock.now.Add(2*time.Hour), issued.ExpiresAt)

	identity, err := session.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestJWTCodec_IssueIsDeterministicForFixedClock(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	session, _ := newTestCodecs(clock)

	first, err := session.Issue(testIdentity)
	require.NoError(t, err)
	second, err := session.Issue(testIdentity)
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
}

func TestJWTCodec_SessionLifetimeBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	session, _ := newTestCodecs(clock)

	issued, err := session.Issue(testIdentity)
	require.NoError(t, err)

	clock.now = issuedAt.Add(119 * time.Minute)
	identity, err := session.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)

	clock.now = issuedAt.Add(121 * time.Minute)
	identity, err = session.Validate(issued.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Empty(t, identity)
}

func TestJWTCodec_StepUpLifetimeBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	_, stepUp := newTestCodecs(clock)

	issued, err := stepUp.Issue(testIdentity)
	require.NoError(t, err)

	clock.now = issuedAt.Add(9 * time.Minute)
	_, err = stepUp.Validate(issued.Token)
	require.NoError(t, err)

	clock.now = issuedAt.Add(11 * time.Minute)
	_, err = stepUp.Validate(issued.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_TokenClassesAreNotInterchangeable(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	session, stepUp := newTestCodecs(clock)

	sessionToken, err := session.Issue(testIdentity)
	require.NoError(t, err)
	stepUpToken, err := stepUp.Issue(testIdentity)
	require.NoError(t, err)

	_, err = stepUp.Validate(sessionToken.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = session.Validate(stepUpToken.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_RejectsWrongIssuerWithSameSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	session := newJWTCodec(SessionIssuer, testSessionSecret, time.Hour, clock.Now)
	impostor := newJWTCodec(StepUpIssuer, testSessionSecret, time.Hour, clock.Now)

	issued, err := impostor.Issue(testIdentity)
	require.NoError(t, err)

	_, err = session.Validate(issued.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_RejectsMalformedAndForeignTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	session, _ := newTestCodecs(clock)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  SessionIssuer,
		Subject: testIdentity,
	}).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    SessionIssuer,
		Subject:   testIdentity,
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    SessionIssuer,
		Subject:   testIdentity,
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte("attacker-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"missing expiry", noExpiry},
		{"unexpected algorithm", otherAlg},
		{"foreign signature", forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := session.Validate(tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
			assert.Empty(t, identity)
		})
	}
}

func TestJWTCodec_IssueRejectsEmptySubject(t *testing.T) {
	session, _ := newTestCodecs(&fakeClock{now: time.Now()})

	_, err := session.Issue("")
	assert.Error(t, err)
}

func TestNewTokenCodecs_FromConfig(t *testing.T) {
	cfg := newTestConfig()

	session, err := NewSessionTokenCodec(cfg)
	require.NoError(t, err)
	stepUp, err := NewStepUpTokenCodec(cfg)
	require.NoError(t, err)

	issued, err := stepUp.Issue(testIdentity)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), issued.ExpiresAt, 5*time.Second)

	_, err = session.Validate(issued.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestNewTokenCodecs_RejectMissingOrSharedSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Session = ""
	_, err := NewSessionTokenCodec(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.StepUp = ""
	_, err = NewStepUpTokenCodec(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.StepUp = cfg.SecretKey.Session
	_, err = NewStepUpTokenCodec(cfg)
	assert.Error(t, err)
}
