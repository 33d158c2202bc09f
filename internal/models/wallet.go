package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supported wallet currencies.
const (
	CurrencyBTC  = "BTC"
	CurrencyETH  = "ETH"
	CurrencyLTC  = "LTC"
	CurrencyDOGE = "DOGE"
	CurrencyXRP  = "XRP"
)

// Wallet holds one currency balance for a user. A user may own many
// wallets. The address must match the currency's address grammar.
type Wallet struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	Currency  string  `gorm:"size:10;not null"`
	Address   string  `gorm:"size:255;not null"`
	Balance   float64 // never negative
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	// Balance always starts at 0
	w.Balance = 0
	return nil
}
