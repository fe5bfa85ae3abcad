package policy

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateLeaveType(ctx context.Context, lt *LeaveType) error
	UpdateLeaveType(ctx context.Context, lt *LeaveType) error
	DeleteLeaveType(ctx context.Context, id string) error
	FindLeaveType(ctx context.Context, id string) (*LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	FindRolePolicy(ctx context.Context, roleID, leaveTypeID string) (*RolePolicy, error)
	ListRolePolicies(ctx context.Context, leaveTypeID string) ([]RolePolicy, error)
	ListPoliciesByRole(ctx context.Context, roleID string) ([]RolePolicy, error)
	ListAllPolicies(ctx context.Context) ([]RolePolicy, error)
	CreatePolicies(ctx context.Context, rows []RolePolicy) error
	UpdateAccrual(ctx context.Context, ids []uuid.UUID, accrual decimal.Decimal) error
	RetirePolicies(ctx context.Context, ids []uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) CreateLeaveType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) UpdateLeaveType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) DeleteLeaveType(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveType{}, "id = ?", id).Error
}

func (r *repository) FindLeaveType(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) ListLeaveTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindRolePolicy(ctx context.Context, roleID, leaveTypeID string) (*RolePolicy, error) {
	var p RolePolicy
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("role_id = ?", roleID).
		Where("leave_type_id = ?", leaveTypeID).
		First(&p).Error
	return &p, err
}

func (r *repository) ListRolePolicies(ctx context.Context, leaveTypeID string) ([]RolePolicy, error) {
	var rows []RolePolicy
	err := r.db.WithContext(ctx).
		Where("leave_type_id = ?", leaveTypeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPoliciesByRole(ctx context.Context, roleID string) ([]RolePolicy, error) {
	var rows []RolePolicy
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("role_id = ?", roleID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAllPolicies(ctx context.Context) ([]RolePolicy, error) {
	var rows []RolePolicy
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreatePolicies(ctx context.Context, rows []RolePolicy) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) UpdateAccrual(ctx context.Context, ids []uuid.UUID, accrual decimal.Decimal) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&RolePolicy{}).
		Where("id IN ?", ids).
		Update("accrual_per_year", accrual).Error
}

func (r *repository) RetirePolicies(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&RolePolicy{}, "id IN ?", ids).Error
}
