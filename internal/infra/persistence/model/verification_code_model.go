package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCodeModel mirrors the 'verification_codes' table.
// The unique tax_id index allows one stored code per identity.
type VerificationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaxID     string    `gorm:"column:tax_id;type:varchar(14);uniqueIndex:idx_verification_codes_tax_id;not null"`
	Code      string    `gorm:"type:char(6);not null"`
	ExpiresAt time.Time `gorm:"index:idx_verification_codes_expires_at;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&VerificationCodeModel{},
		&AuditEventModel{},
	}
}
