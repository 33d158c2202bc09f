package repositories

import (
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDatabase backs a Database with a sqlmock connection so tests can
// assert exactly which statements reach the store.
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	closer := func() { sqlDB.Close() }
	return NewFromGorm(gdb), mock, closer
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var (
	userID   = "3f2b8c9e-1a4d-4e5f-9b6a-7c8d9e0f1a2b"
	walletID = "9a8b7c6d-5e4f-4a3b-8c9d-0e1f2a3b4c5d"
	txID     = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
)

var userColumns = []string{"id", "email", "username", "password_hash", "is_active", "is_verified", "created_at", "updated_at"}

var walletColumns = []string{"id", "user_id", "currency", "address", "balance", "is_active", "created_at", "updated_at"}

var transactionColumns = []string{"id", "user_id", "wallet_id", "type", "amount", "fee", "destination_address", "tx_hash", "status", "created_at", "updated_at"}
