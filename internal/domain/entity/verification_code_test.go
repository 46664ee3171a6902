package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCode_IsExpired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	code := &VerificationCode{Code: "123456", ExpiresAt: issued.Add(5 * time.Minute)}

	assert.False(t, code.IsExpired(issued.Add(4*time.Minute)))
	assert.True(t, code.IsExpired(issued.Add(5*time.Minute)))
	assert.True(t, code.IsExpired(issued.Add(6*time.Minute)))
}
