package balance

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindBalance(ctx context.Context, userID, leaveTypeID string, year int) (*LeaveBalance, error)
	ListBalances(ctx context.Context, userID string, year int) ([]LeaveBalance, error)
	AdjustBalance(ctx context.Context, userID, leaveTypeID string, year int, balanceDelta, usedDelta decimal.Decimal) (int64, error)
	ProvisionRow(ctx context.Context, row *LeaveBalance) (int64, error)
	ListYearRows(ctx context.Context, leaveTypeID string, year int) ([]LeaveBalance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the session's connection to the caller's transaction;
// a debit that runs alongside a status change must not outlive it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	// The Context forces a statement clone before the ConnPool swap,
	// keeping the pooled session untouched.
	db := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) FindBalance(ctx context.Context, userID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

func (r *repository) ListBalances(ctx context.Context, userID string, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("year = ?", year).
		Order("leave_type_id").
		Find(&rows).Error
	return rows, err
}

// AdjustBalance applies both deltas in one statement so concurrent
// approvals cannot interleave between a read and a write. The returned
// row count tells the caller whether the ledger row existed.
func (r *repository) AdjustBalance(ctx context.Context, userID, leaveTypeID string, year int, balanceDelta, usedDelta decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE leave_balances
		SET balance = balance + ?, used = used + ?, updated_at = now()
		WHERE user_id = ? AND leave_type_id = ? AND year = ?
	`, balanceDelta, usedDelta, userID, leaveTypeID, year)
	return res.RowsAffected, res.Error
}

// ProvisionRow inserts a ledger row, silently keeping the existing one
// when the (user, leave type, year) key is already present. Rollover and
// onboarding both lean on this for idempotence.
func (r *repository) ProvisionRow(ctx context.Context, row *LeaveBalance) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		INSERT INTO leave_balances (id, user_id, leave_type_id, year, balance, used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, now(), now())
		ON CONFLICT (user_id, leave_type_id, year) DO NOTHING
	`, row.ID, row.UserID, row.LeaveTypeID, row.Year, row.Balance, row.Used)
	return res.RowsAffected, res.Error
}

func (r *repository) ListYearRows(ctx context.Context, leaveTypeID string, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		Find(&rows).Error
	return rows, err
}
