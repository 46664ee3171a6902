package auth

import (
	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/errors"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// totpService wraps pquerna/otp with the service's issuer name.
type totpService struct {
	issuer string
}

// NewTOTPService is the constructor for totpService.
func NewTOTPService(cfg *config.Config) service.TOTPService {
	return &totpService{issuer: cfg.TOTP.Issuer}
}

// GenerateKey creates a 160-bit secret with 6-digit, 30-second SHA1 codes.
func (s *totpService) GenerateKey(accountName string) (*service.TOTPKey, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp key")
	}

	return &service.TOTPKey{
		Secret: key.Secret(),
		URL:    key.URL(),
	}, nil
}

// Validate accepts the code for the current step and one step of clock skew.
func (s *totpService) Validate(code, secret string) bool {
	if code == "" || secret == "" {
		return false
	}

	return totp.Validate(code, secret)
}
