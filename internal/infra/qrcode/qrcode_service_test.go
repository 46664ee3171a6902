package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"containerview/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOTPAuthURL = "otpauth://totp/Container%20View:12345678901?issuer=Container%20View&secret=JBSWY3DPEHPK3PXP"

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.name))
		})
	}
}

func TestQRCodeService_EncodePNG(t *testing.T) {
	svc := NewQRCodeService(&config.Config{TOTP: &config.TOTPConfig{QRCodeSize: 200, ErrorCorrectionLevel: "M"}})

	pngBytes, err := svc.EncodePNG(testOTPAuthURL)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestQRCodeService_EncodePNG_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	pngBytes, err := svc.EncodePNG(testOTPAuthURL)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_EncodePNG_EmptyContent(t *testing.T) {
	svc := newQRCodeService(256, "M")

	_, err := svc.EncodePNG("")
	assert.Error(t, err)
}
