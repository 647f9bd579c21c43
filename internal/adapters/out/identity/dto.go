// Package identity is the identity store: accounts, credentials, roles and
// refresh sessions. It lives in its own database and commits independently
// of the domain store.
package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountDTO is the accounts table row.
type AccountDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name       string           `gorm:"type:varchar(256);not null"`
	Email      string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	SecretHash string           `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time        `gorm:"type:timestamptz;not null"`
	UpdatedAt  time.Time        `gorm:"type:timestamptz;not null"`
	Roles      []AccountRoleDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

// AccountRoleDTO grants one role to one account.
type AccountRoleDTO struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"type:varchar(32);primaryKey"`
}

func (AccountRoleDTO) TableName() string {
	return "account_roles"
}

// Migrate creates the identity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AccountDTO{}, &AccountRoleDTO{})
}
