package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
)

const (
	SecurityStartTLS = "starttls"
	SecuritySSL      = "ssl"
	SecurityNone     = "none"

	defaultSMTPPort    = "587"
	defaultDialTimeout = 10 * time.Second
	defaultSubject     = "Código de Verificação - Container View"
)

type smtpSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	security string
	subject  string
	logger   *slog.Logger
}

// NewSMTPSender builds a sender that talks to the configured mail server.
func NewSMTPSender(cfg *config.MailConfig, logger *slog.Logger) (service.CodeSender, error) {
	s := &smtpSender{
		host:     strings.TrimSpace(cfg.Host),
		port:     strings.TrimSpace(cfg.Port),
		username: strings.TrimSpace(cfg.Username),
		password: cfg.Password,
		from:     strings.TrimSpace(cfg.From),
		security: strings.ToLower(strings.TrimSpace(cfg.Security)),
		subject:  strings.TrimSpace(cfg.Subject),
		logger:   logger,
	}

	if s.host == "" || s.from == "" {
		return nil, errors.New("mail.host and mail.from are required for the smtp provider")
	}
	if s.port == "" {
		s.port = defaultSMTPPort
	}
	if s.subject == "" {
		s.subject = defaultSubject
	}

	switch s.security {
	case "":
		s.security = SecurityStartTLS
	case "smtps":
		s.security = SecuritySSL
	case SecurityStartTLS, SecuritySSL, SecurityNone:
	default:
		return nil, errors.Errorf("unsupported mail security mode: %s", s.security)
	}

	logger.Info("SMTP mail delivery enabled",
		slog.String("host", s.host),
		slog.String("port", s.port),
		slog.String("security", s.security),
		slog.String("user", maskForLog(s.username)),
	)

	return s, nil
}

func (s *smtpSender) SendVerificationCode(ctx context.Context, msg *service.VerificationMessage) error {
	if msg == nil || msg.To == "" {
		return errors.New("verification message has no recipient")
	}

	payload := message(s.from, msg.To, s.subject, verificationBody(msg))
	if err := s.send(ctx, msg.To, payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send verification code",
			slog.String("to", maskForLog(msg.To)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "send verification code")
	}

	s.logger.InfoContext(ctx, "Verification code sent", slog.String("to", maskForLog(msg.To)))

	return nil
}

func (s *smtpSender) send(ctx context.Context, to string, msg []byte) error {
	client, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.security == SecurityStartTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				return errors.Wrap(err, "starttls")
			}
		}
	}

	if s.username != "" && s.password != "" {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}

	if err := client.Mail(s.from); err != nil {
		return errors.Wrap(err, "mail from")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "data")
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "write message")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close message")
	}

	return client.Quit()
}

func (s *smtpSender) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)
	dialer := &net.Dialer{Timeout: defaultDialTimeout}

	var (
		conn net.Conn
		err  error
	)
	if s.security == SecuritySSL {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "smtp handshake")
	}

	return client, nil
}

func message(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	return buf.Bytes()
}
