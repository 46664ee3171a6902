package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsAuthLifetimes(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.Auth.StepUpTokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.VerificationCodeTTL)
	assert.Equal(t, 6, cfg.Auth.VerificationCodeLength)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{SessionTokenTTL: time.Hour}}
	cfg.ApplyDefaults()

	assert.Equal(t, time.Hour, cfg.Auth.SessionTokenTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing session secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Session = "" },
			wantErr: "must be provided",
		},
		{
			name:    "missing step-up secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.StepUp = "" },
			wantErr: "must be provided",
		},
		{
			name:    "shared secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.StepUp = cfg.SecretKey.Session },
			wantErr: "must differ",
		},
		{
			name:    "code length other than six",
			mutate:  func(cfg *Config) { cfg.Auth.VerificationCodeLength = 8 },
			wantErr: "verificationCodeLength",
		},
		{
			name: "bootstrap admin without password",
			mutate: func(cfg *Config) {
				cfg.Bootstrap.Admin.Enabled = true
				cfg.Bootstrap.Admin.TaxID = "12345678901"
			},
			wantErr: "bootstrap.admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKey{Session: "session-secret", StepUp: "step-up-secret"}}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
