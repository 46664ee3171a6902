package mail

import (
	"context"
	"log/slog"

	"containerview/internal/domain/service"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender writes codes to the log instead of sending mail. Local use only.
func NewLogSender(logger *slog.Logger) service.CodeSender {
	logger.Warn("mail delivery disabled; verification codes are written to the log")

	return &logSender{logger: logger}
}

func (s *logSender) SendVerificationCode(ctx context.Context, msg *service.VerificationMessage) error {
	s.logger.InfoContext(ctx, "Verification code issued",
		slog.String("to", maskForLog(msg.To)),
		slog.String("code", msg.Code),
		slog.Int("expiryMinutes", msg.ExpiryMinutes),
	)

	return nil
}
