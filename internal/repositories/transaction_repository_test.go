package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ysfrando/SQLOtter/internal/models"
)

func TestCreateTransaction_Deposit(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.Create(context.Background(), userID, walletID, models.TransactionTypeDeposit, 0.1, 0.0001, "")
	require.NoError(t, err)
	require.NotEmpty(t, tx.ID)
	require.Equal(t, models.TransactionStatusPending, tx.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_RejectsUnknownType(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	for _, typ := range []string{"tranfer", "TRANSFER", "refund", ""} {
		_, err := repo.Create(context.Background(), userID, walletID, typ, 1, 0, "")
		require.ErrorIs(t, err, ErrInvalidInput, typ)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_AmountAndFeeBounds(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	_, err := repo.Create(context.Background(), userID, walletID, models.TransactionTypeDeposit, 0, 0, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.Create(context.Background(), userID, walletID, models.TransactionTypeDeposit, -5, 0, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.Create(context.Background(), userID, walletID, models.TransactionTypeDeposit, 1, -0.1, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_WithdrawalRequiresDestination(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	_, err := repo.Create(context.Background(), userID, walletID, models.TransactionTypeWithdrawal, 1, 0, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.Create(context.Background(), userID, walletID, models.TransactionTypeWithdrawal, 1, 0, "not-an-address")
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_Withdrawal(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.Create(context.Background(), userID, walletID, models.TransactionTypeWithdrawal, 1, 0.001,
		"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq")
	require.NoError(t, err)
	require.Equal(t, "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", tx.DestinationAddress)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserTransactions_FiltersAndOrder(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND type = \$2 AND status = \$3 ORDER BY created_at DESC LIMIT \$4`).
		WithArgs(userID, "deposit", "completed", 20).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(txID, userID, walletID, "deposit", 0.1, 0.0001, "", "abc123", "completed", now, now))

	txs, err := repo.GetUserTransactions(context.Background(), userID, 20, 0, "deposit", "completed")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "completed", txs[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserTransactions_IgnoresUnknownFilters(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	// Unknown filter values are dropped rather than spliced into SQL.
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(userID, 20).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.GetUserTransactions(context.Background(), userID, 20, 0, "tranfer", "'; --")
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransactionStatus(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.UpdateStatus(context.Background(), txID, models.TransactionStatusCompleted, "0xdeadbeef")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransactionStatus_RejectsUnknownStatus(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	ok, err := repo.UpdateStatus(context.Background(), txID, "reversed", "")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTransactions_RequiresUserScope(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	// Without a user id the search returns empty and never queries,
	// whatever the term says.
	txs, err := repo.Search(context.Background(), "x'; DROP TABLE users; --", 20, "")
	require.NoError(t, err)
	require.Empty(t, txs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTransactions_BindsSanitizedTerm(t *testing.T) {
	db, mock, closeDB := newMockDatabase(t)
	defer closeDB()
	repo := NewTransactionRepository(db, testLogger())

	pattern := "%bc1q%"
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND .*CAST\(id AS TEXT\) ILIKE \$2 OR tx_hash ILIKE \$3 OR destination_address ILIKE \$4`).
		WithArgs(userID, pattern, pattern, pattern, 20).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	txs, err := repo.Search(context.Background(), "bc1q", 20, userID)
	require.NoError(t, err)
	require.Empty(t, txs)

	require.NoError(t, mock.ExpectationsWereMet())
}
