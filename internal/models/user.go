package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an exchange account holder. Email and username carry unique
// indexes; format validity is enforced by the repository layer before any
// row is written.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:60;not null"` // opaque bcrypt digest
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Wallets      []Wallet      `gorm:"foreignKey:UserID"`
	Transactions []Transaction `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
