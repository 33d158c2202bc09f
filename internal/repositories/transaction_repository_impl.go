package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ysfrando/SQLOtter/internal/models"
	"github.com/ysfrando/SQLOtter/internal/validation"
)

var transactionTypes = map[string]bool{
	models.TransactionTypeDeposit:    true,
	models.TransactionTypeWithdrawal: true,
	models.TransactionTypeTransfer:   true,
}

var transactionStatuses = map[string]bool{
	models.TransactionStatusPending:   true,
	models.TransactionStatusCompleted: true,
	models.TransactionStatusFailed:    true,
}

type transactionRepository struct {
	db     *Database
	logger logrus.FieldLogger
}

// NewTransactionRepository creates a TransactionRepository.
func NewTransactionRepository(db *Database, logger logrus.FieldLogger) TransactionRepository {
	return &transactionRepository{db: db, logger: logger}
}

func (r *transactionRepository) Create(ctx context.Context, userID, walletID, txType string, amount, fee float64, destinationAddress string) (*models.Transaction, error) {
	if !validation.ValidateUUID(userID) {
		r.logger.WithField("user_id", userID).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}
	if !validation.ValidateUUID(walletID) {
		r.logger.WithField("wallet_id", walletID).Warn("rejected invalid wallet id")
		return nil, fmt.Errorf("%w: invalid wallet id format", ErrInvalidInput)
	}
	if !transactionTypes[txType] {
		r.logger.WithField("type", txType).Warn("rejected unknown transaction type")
		return nil, fmt.Errorf("%w: invalid transaction type", ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if fee < 0 {
		return nil, fmt.Errorf("%w: fee cannot be negative", ErrInvalidInput)
	}
	if txType == models.TransactionTypeWithdrawal {
		if destinationAddress == "" {
			r.logger.WithField("user_id", userID).Warn("withdrawal missing destination address")
			return nil, fmt.Errorf("%w: withdrawal requires a destination address", ErrInvalidInput)
		}
		// The owning wallet's currency is unknown here, so the address is
		// accepted when it matches any supported grammar.
		if !validation.ValidateCryptoAddress(destinationAddress, "") {
			r.logger.WithField("user_id", userID).Warn("rejected malformed destination address")
			return nil, fmt.Errorf("%w: invalid destination address format", ErrInvalidInput)
		}
	}

	tx := &models.Transaction{
		UserID:             userID,
		WalletID:           walletID,
		Type:               txType,
		Amount:             amount,
		Fee:                fee,
		DestinationAddress: destinationAddress,
	}
	if err := r.db.Session(ctx).Create(tx).Error; err != nil {
		r.logger.WithError(err).Error("failed to create transaction")
		return nil, fmt.Errorf("%w: create transaction", ErrDatabaseOperation)
	}
	return tx, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	if !validation.ValidateUUID(id) {
		r.logger.WithField("transaction_id", id).Warn("rejected invalid transaction id")
		return nil, fmt.Errorf("%w: invalid transaction id format", ErrInvalidInput)
	}

	var tx models.Transaction
	if err := r.db.Session(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.WithError(err).Error("failed to fetch transaction by id")
		return nil, fmt.Errorf("%w: get transaction", ErrDatabaseOperation)
	}
	return &tx, nil
}

func (r *transactionRepository) GetUserTransactions(ctx context.Context, userID string, limit, offset int, txType, status string) ([]*models.Transaction, error) {
	if !validation.ValidateUUID(userID) {
		r.logger.WithField("user_id", userID).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	query := r.db.Session(ctx).Where("user_id = ?", userID)
	if txType != "" && transactionTypes[txType] {
		query = query.Where("type = ?", txType)
	}
	if status != "" && transactionStatuses[status] {
		query = query.Where("status = ?", status)
	}

	var txs []*models.Transaction
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	if err != nil {
		r.logger.WithError(err).Error("failed to list user transactions")
		return nil, fmt.Errorf("%w: list transactions", ErrDatabaseOperation)
	}
	return txs, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id, status, txHash string) (bool, error) {
	if !validation.ValidateUUID(id) {
		r.logger.WithField("transaction_id", id).Warn("rejected invalid transaction id")
		return false, fmt.Errorf("%w: invalid transaction id format", ErrInvalidInput)
	}
	if !transactionStatuses[status] {
		r.logger.WithField("status", status).Warn("rejected unknown transaction status")
		return false, fmt.Errorf("%w: invalid transaction status", ErrInvalidInput)
	}

	updates := map[string]interface{}{"status": status}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}

	res := r.db.Session(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logger.WithError(res.Error).Error("failed to update transaction status")
		return false, fmt.Errorf("%w: update transaction", ErrDatabaseOperation)
	}
	return res.RowsAffected > 0, nil
}

func (r *transactionRepository) Search(ctx context.Context, term string, limit int, userID string) ([]*models.Transaction, error) {
	term = validation.SanitizeString(term)

	// Search is always scoped to one user's rows.
	if userID == "" {
		return []*models.Transaction{}, nil
	}
	if !validation.ValidateUUID(userID) {
		r.logger.WithField("user_id", userID).Warn("rejected invalid user id")
		return nil, fmt.Errorf("%w: invalid user id format", ErrInvalidInput)
	}
	limit = clampLimit(limit)

	pattern := "%" + validation.EscapeLike(term) + "%"

	var txs []*models.Transaction
	err := r.db.Session(ctx).
		Where("user_id = ?", userID).
		Where("CAST(id AS TEXT) ILIKE ? OR tx_hash ILIKE ? OR destination_address ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		r.logger.WithError(err).Error("failed to search transactions")
		return nil, fmt.Errorf("%w: search transactions", ErrDatabaseOperation)
	}
	return txs, nil
}
