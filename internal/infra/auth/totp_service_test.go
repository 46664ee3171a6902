package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPService_GenerateKey(t *testing.T) {
	svc := NewTOTPService(newTestConfig())

	key, err := svc.GenerateKey(testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, key.Secret)
	assert.True(t, strings.HasPrefix(key.URL, "otpauth://totp/"))
	assert.Contains(t, key.URL, "issuer=Container")
}

func TestTOTPService_Validate(t *testing.T) {
	svc := NewTOTPService(newTestConfig())
	key, err := svc.GenerateKey(testIdentity)
	require.NoError(t, err)

	code, err := totp.GenerateCode(key.Secret, time.Now())
	require.NoError(t, err)

	assert.True(t, svc.Validate(code, key.Secret))
	assert.False(t, svc.Validate("000000x", key.Secret))
	assert.False(t, svc.Validate("", key.Secret))
	assert.False(t, svc.Validate(code, ""))
}
