package repositories

import (
	"context"

	"github.com/ysfrando/SQLOtter/internal/models"
)

// WalletRepository defines validated, parameterized wallet operations.
// Not-found is reported as a nil result, never as an error.
type WalletRepository interface {
	// Create inserts a wallet for a user. The address must match the
	// currency's address grammar; balance starts at zero.
	Create(ctx context.Context, userID, currency, address string) (*models.Wallet, error)

	// GetByID retrieves a wallet by UUID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Wallet, error)

	// GetUserWallets retrieves all wallets owned by a user.
	GetUserWallets(ctx context.Context, userID string) ([]*models.Wallet, error)

	// UpdateBalance sets a wallet's balance. It fails closed: false on a
	// negative balance, a missing wallet, or a store failure.
	UpdateBalance(ctx context.Context, walletID string, newBalance float64) bool
}

// Implementation is in wallet_repository_impl.go.
