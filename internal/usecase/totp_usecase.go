package usecase

import "context"

// TOTPSetupOutput is what an authenticator app needs to enroll.
type TOTPSetupOutput struct {
	Secret     string
	OTPAuthURL string
	QRCodePNG  []byte
}

// TOTPUsecase handles authenticator app enrollment.
type TOTPUsecase interface {
	// Setup stores a fresh unconfirmed secret for the identity. Replacing an
	// enabled authenticator needs a valid currentCode from it.
	Setup(ctx context.Context, identity, currentCode string) (*TOTPSetupOutput, error)
	// Enable confirms enrollment with a code from the authenticator app.
	Enable(ctx context.Context, identity, code string) error
}
