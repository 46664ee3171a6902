package service

// TOTPKey is a newly generated authenticator secret.
type TOTPKey struct {
	Secret string // Base32 secret stored on the credential record
	URL    string // otpauth:// URL encoded into the enrollment QR code
}

// TOTPService generates and checks RFC 6238 authenticator codes.
type TOTPService interface {
	GenerateKey(accountName string) (*TOTPKey, error)
	Validate(code, secret string) bool
}
