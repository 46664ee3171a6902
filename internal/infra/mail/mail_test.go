package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"containerview/config"
	"containerview/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeSender(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		mail     *config.MailConfig
		wantType any
		wantErr  bool
	}{
		{name: "default is log locally", env: config.EnvLocal, mail: &config.MailConfig{}, wantType: &logSender{}},
		{name: "log", env: config.EnvLocal, mail: &config.MailConfig{Provider: "LOG"}, wantType: &logSender{}},
		{name: "empty provider in production", env: "production", mail: &config.MailConfig{}, wantErr: true},
		{name: "log in production", env: "production", mail: &config.MailConfig{Provider: "log"}, wantErr: true},
		{name: "log without env", mail: &config.MailConfig{Provider: "log"}, wantErr: true},
		{name: "smtp", env: "production", mail: &config.MailConfig{Provider: "smtp", Host: "smtp.local", From: "a@b.c"}, wantType: &smtpSender{}},
		{name: "unknown", env: config.EnvLocal, mail: &config.MailConfig{Provider: "carrier-pigeon"}, wantErr: true},
		{name: "missing section", env: config.EnvLocal, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Mail: tt.mail}
			cfg.Env.Env = tt.env

			sender, err := NewCodeSender(Params{
				Config: cfg,
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, sender)
		})
	}
}

func TestLogSender_WritesCode(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sender.SendVerificationCode(context.Background(), &service.VerificationMessage{
		To:            "ana@example.com",
		Code:          "482913",
		ExpiryMinutes: 5,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "482913")
	assert.Contains(t, out, "a***m")
	assert.NotContains(t, out, "ana@example.com")
}
