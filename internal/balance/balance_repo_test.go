package balance_test

import (
	"context"
	"testing"

	"leaveflow/internal/balance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// A debit issued while finalizing an approval must ride the same
// transaction as the status change, so a rollback undoes both.
func TestRepositoryWithTxAdjustJoinsTransaction(t *testing.T) {
	ctx := context.Background()
	gormDB, poolMock := newGormDB(t)

	txConn, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txConn.Close()

	userID := uuid.NewString()
	leaveTypeID := uuid.NewString()

	txMock.ExpectBegin()
	txMock.ExpectExec("UPDATE leave_balances").
		WithArgs(decimal.NewFromInt(-3), decimal.NewFromInt(3), userID, leaveTypeID, 2026).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txConn.BeginTx(ctx, nil)
	require.NoError(t, err)

	repo := balance.NewRepository(gormDB).WithTx(tx)
	affected, err := repo.AdjustBalance(ctx, userID, leaveTypeID, 2026,
		decimal.NewFromInt(-3), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	require.NoError(t, tx.Rollback())

	assert.NoError(t, txMock.ExpectationsWereMet())
	// Nothing may leak onto the pooled connection.
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestRepositoryWithTxProvisionJoinsTransaction(t *testing.T) {
	ctx := context.Background()
	gormDB, poolMock := newGormDB(t)

	txConn, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txConn.Close()

	txMock.ExpectBegin()
	txMock.ExpectExec("INSERT INTO leave_balances").
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	tx, err := txConn.BeginTx(ctx, nil)
	require.NoError(t, err)

	repo := balance.NewRepository(gormDB).WithTx(tx)
	inserted, err := repo.ProvisionRow(ctx, &balance.LeaveBalance{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		LeaveTypeID: uuid.New(),
		Year:        2027,
		Balance:     decimal.NewFromInt(12),
		Used:        decimal.Zero,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, inserted)

	require.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
