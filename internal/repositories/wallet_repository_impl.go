package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ysfrando/SQLOtter/internal/models"
	"github.com/ysfrando/SQLOtter/internal/repositories/cache"
	"github.com/ysfrando/SQLOtter/internal/validation"
)

type walletRepository struct {
	db     *Database
	cache  *cache.Service
	logger logrus.FieldLogger
}

// NewWalletRepository creates a WalletRepository. The cache may be nil to
// disable read caching.
func NewWalletRepository(db *Database, cacheSvc *cache.Service, logger logrus.FieldLogger) WalletRepository {
	return &walletRepository{db: db, cache: cacheSvc, logger: logger}
}

func (r *walletRepository) Create(ctx context.Context, userID, currency, address string) (*models.Wallet, error) {
	if !validation.ValidateUUID(userID) {
		r.logger.WithField("user_id", userID).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}
	if !validation.IsSupportedCurrency(currency) {
		r.logger.WithField("currency", currency).Warn("rejected unsupported currency")
		return nil, fmt.Errorf("%w: unsupported currency", ErrInvalidInput)
	}
	if !validation.ValidateCryptoAddress(address, currency) {
		r.logger.WithField("currency", currency).Warn("rejected malformed address")
		return nil, fmt.Errorf("%w: invalid %s address format", ErrInvalidInput, currency)
	}

	wallet := &models.Wallet{
		UserID:   userID,
		Currency: currency,
		Address:  address,
		IsActive: true,
	}
	if err := r.db.Session(ctx).Create(wallet).Error; err != nil {
		r.logger.WithError(err).Error("failed to create wallet")
		return nil, fmt.Errorf("%w: create wallet", ErrDatabaseOperation)
	}
	return wallet, nil
}

func (r *walletRepository) GetByID(ctx context.Context, id string) (*models.Wallet, error) {
	if !validation.ValidateUUID(id) {
		r.logger.WithField("wallet_id", id).Warn("rejected invalid wallet id")
		return nil, fmt.Errorf("%w: invalid wallet id format", ErrInvalidInput)
	}

	if r.cache != nil {
		if wallet, err := r.cache.GetWallet(ctx, id); err == nil {
			return wallet, nil
		}
	}

	var wallet models.Wallet
	if err := r.db.Session(ctx).Where("id = ?", id).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.WithError(err).Error("failed to fetch wallet by id")
		return nil, fmt.Errorf("%w: get wallet", ErrDatabaseOperation)
	}

	if r.cache != nil {
		if err := r.cache.SetWallet(ctx, &wallet); err != nil {
			r.logger.WithError(err).Warn("failed to cache wallet")
		}
	}
	return &wallet, nil
}

func (r *walletRepository) GetUserWallets(ctx context.Context, userID string) ([]*models.Wallet, error) {
	if !validation.ValidateUUID(userID) {
		r.logger.WithField("user_id", userID).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}

	var wallets []*models.Wallet
	if err := r.db.Session(ctx).Where("user_id = ?", userID).Find(&wallets).Error; err != nil {
		r.logger.WithError(err).Error("failed to list user wallets")
		return nil, fmt.Errorf("%w: list wallets", ErrDatabaseOperation)
	}
	return wallets, nil
}

// UpdateBalance swallows store failures into the boolean by contract;
// everything else in this package re-raises them.
func (r *walletRepository) UpdateBalance(ctx context.Context, walletID string, newBalance float64) bool {
	if !validation.ValidateUUID(walletID) {
		r.logger.WithField("wallet_id", walletID).Warn("rejected invalid wallet id")
		return false
	}
	if newBalance < 0 {
		r.logger.WithField("wallet_id", walletID).Warn("rejected negative balance")
		return false
	}

	res := r.db.Session(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", newBalance)
	if res.Error != nil {
		r.logger.WithError(res.Error).Error("failed to update wallet balance")
		return false
	}
	if res.RowsAffected == 0 {
		return false
	}

	if r.cache != nil {
		if err := r.cache.InvalidateWallet(ctx, walletID); err != nil {
			r.logger.WithError(err).Warn("failed to invalidate wallet cache")
		}
	}
	return true
}
