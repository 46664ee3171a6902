// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. tax_id is the login identity.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaxID            string    `gorm:"column:tax_id;type:varchar(14);uniqueIndex:idx_users_tax_id;not null"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100)"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Role             string    `gorm:"type:varchar(20);index:idx_users_role;not null"`
	TwoFactorEnabled bool      `gorm:"not null"`
	TOTPSecret       string    `gorm:"column:totp_secret;type:varchar(64)"`
	TOTPEnabled      bool      `gorm:"column:totp_enabled;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
