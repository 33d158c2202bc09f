package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types.
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
)

// Transaction statuses. There is no enforced transition graph: any
// whitelisted status may be set from any other.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction records a deposit, withdrawal or transfer against a wallet.
// DestinationAddress is required (and format-checked) for withdrawals;
// TxHash is filled in once the transaction is observed on chain.
type Transaction struct {
	ID                 string `gorm:"type:uuid;primaryKey"`
	UserID             string `gorm:"type:uuid;not null;index"`
	WalletID           string `gorm:"type:uuid;not null;index"`
	Type               string `gorm:"size:20;not null"`
	Amount             float64
	Fee                float64
	DestinationAddress string `gorm:"size:255"`
	TxHash             string `gorm:"size:255"`
	Status             string `gorm:"size:20;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TransactionStatusPending
	}
	return nil
}
