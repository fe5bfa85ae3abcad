package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRequest(ctx context.Context, req *LeaveRequest) error
	CreateApprovals(ctx context.Context, rows []LeaveApproval) error
	FindRequest(ctx context.Context, id string) (*LeaveRequest, error)
	FindApproval(ctx context.Context, id string) (*LeaveApproval, error)
	// ActOnApproval is the compare-and-swap for one approval step: the
	// write only lands if the record is still pending and belongs to the
	// acting approver. Returns the number of rows changed.
	ActOnApproval(ctx context.Context, approvalID, approverID, toStatus string, comment *string) (int64, error)
	UpdateRequestStatus(ctx context.Context, id, status string) error
	CancelOpenApprovals(ctx context.Context, requestID string) error
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListIncoming(ctx context.Context, approverID string) ([]LeaveApproval, error)
	ListApprovedCovering(ctx context.Context, date time.Time) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the session's connection to the caller's transaction,
// so request, approval and ledger writes commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	// Mirrors gorm's own Begin: the Context forces a statement clone, so
	// swapping the ConnPool cannot leak onto the pooled session.
	db := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) CreateApprovals(ctx context.Context, rows []LeaveApproval) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindRequest(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Preload("Approvals.Approver").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindApproval(ctx context.Context, id string) (*LeaveApproval, error) {
	var a LeaveApproval
	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Request.LeaveType").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) ActOnApproval(ctx context.Context, approvalID, approverID, toStatus string, comment *string) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE leave_approvals
		SET status = ?, comments = ?, acted_at = now(), updated_at = now()
		WHERE id = ? AND approver_id = ? AND status = ?
	`, toStatus, comment, approvalID, approverID, ApprovalPending)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateRequestStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CancelOpenApprovals(ctx context.Context, requestID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE leave_approvals
		SET status = ?, acted_at = now(), updated_at = now()
		WHERE leave_request_id = ? AND status <> ?
	`, ApprovalCancelled, requestID, ApprovalCancelled).Error
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListIncoming returns only the steps whose turn it is: the record must
// be pending, assigned to the approver, and at the level the parent
// request is currently waiting on.
func (r *repository) ListIncoming(ctx context.Context, approverID string) ([]LeaveApproval, error) {
	var rows []LeaveApproval
	err := r.db.WithContext(ctx).
		Joins("JOIN leave_requests lr ON lr.id = leave_approvals.leave_request_id").
		Where("leave_approvals.approver_id = ?", approverID).
		Where("leave_approvals.status = ?", ApprovalPending).
		Where(`
			(lr.status IN (?, ?) AND leave_approvals.level = 1)
			OR (lr.status = ? AND leave_approvals.level = 2)
			OR (lr.status = ? AND leave_approvals.level = 3)
		`, StatusPending, StatusPendingL1, StatusPendingL2, StatusPendingL3).
		Preload("Request").
		Preload("Request.User").
		Preload("Request.LeaveType").
		Order("leave_approvals.created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListApprovedCovering(ctx context.Context, date time.Time) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	day := date.Format("2006-01-02")
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("LeaveType").
		Where("status = ?", StatusApproved).
		Where("start_date <= ?", day).
		Where("end_date >= ?", day).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
