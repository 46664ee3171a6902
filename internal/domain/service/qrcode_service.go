package service

// QRCodeService renders QR code images
type QRCodeService interface {
	// EncodePNG renders content as a PNG image
	EncodePNG(content string) ([]byte, error)
}
