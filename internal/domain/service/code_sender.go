package service

import "context"

// VerificationMessage is everything a delivery channel needs to send a code.
type VerificationMessage struct {
	To            string
	DisplayName   string
	Code          string
	ExpiryMinutes int
}

// CodeSender delivers one-time codes out of band.
// A returned error means the recipient must be assumed not to have the code.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, msg *VerificationMessage) error
}
