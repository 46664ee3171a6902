package mail

import (
	"fmt"
	"log/slog"
	"strings"

	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/errors"

	"go.uber.org/fx"
)

const (
	ProviderSMTP = "smtp"
	ProviderLog  = "log"
)

// Params holds dependencies for the code sender.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCodeSender picks the delivery channel named by mail.provider. The log
// channel never reaches the user, so it is refused outside the local env.
func NewCodeSender(params Params) (service.CodeSender, error) {
	if params.Config.Mail == nil {
		return nil, errors.New("mail configuration is required")
	}

	logger := params.Logger.With(slog.String("component", "mail"))

	switch provider := strings.ToLower(strings.TrimSpace(params.Config.Mail.Provider)); provider {
	case ProviderSMTP:
		return NewSMTPSender(params.Config.Mail, logger)
	case ProviderLog, "":
		if env := params.Config.Env.Env; env != config.EnvLocal {
			return nil, errors.Errorf("mail provider %q is only allowed in the %s env, got env %q",
				ProviderLog, config.EnvLocal, env)
		}

		return NewLogSender(logger), nil
	default:
		return nil, errors.Errorf("unsupported mail provider: %s", provider)
	}
}

func verificationBody(msg *service.VerificationMessage) string {
	return fmt.Sprintf("Olá %s,\n\nSeu código de verificação é: %s\n\nEste código expira em %d minutos.",
		msg.DisplayName, msg.Code, msg.ExpiryMinutes)
}

func maskForLog(s string) string {
	if s == "" {
		return "(none)"
	}
	if len(s) <= 2 {
		return "***"
	}

	return s[:1] + "***" + s[len(s)-1:]
}
