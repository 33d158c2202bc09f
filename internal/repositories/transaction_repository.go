package repositories

import (
	"context"

	"github.com/ysfrando/SQLOtter/internal/models"
)

// TransactionRepository defines validated, parameterized transaction
// operations. Not-found is reported as a nil result, never as an error.
type TransactionRepository interface {
	// Create inserts a transaction in pending status. Type must be one of
	// deposit, withdrawal or transfer; amount must be positive and fee
	// non-negative. Withdrawals require a format-valid destination
	// address.
	Create(ctx context.Context, userID, walletID, txType string, amount, fee float64, destinationAddress string) (*models.Transaction, error)

	// GetByID retrieves a transaction by UUID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Transaction, error)

	// GetUserTransactions retrieves a user's transactions newest first.
	// Limit is clamped to 1..100 and offset to >= 0. Type and status
	// filters apply only when they name a whitelisted value.
	GetUserTransactions(ctx context.Context, userID string, limit, offset int, txType, status string) ([]*models.Transaction, error)

	// UpdateStatus sets a transaction's status (pending, completed or
	// failed) and optionally records the blockchain hash. It reports
	// false when no row matched.
	UpdateStatus(ctx context.Context, id, status, txHash string) (bool, error)

	// Search finds a user's transactions whose id, blockchain hash or
	// destination address contains the sanitized term. A user id is
	// required; without one the result is always empty.
	Search(ctx context.Context, term string, limit int, userID string) ([]*models.Transaction, error)
}

// Implementation is in transaction_repository_impl.go.
