package policy

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeaveType.Unbounded marks types that track consumption only (unpaid,
// emergency): the balance column is meaningless for them. ApproverCount is
// the default approval breadth when a request does not escalate
// (0 = auto-approve).
type LeaveType struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"type:varchar(50);not null;uniqueIndex:uq_leave_type_name"`
	MaxPerYear    decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Unbounded     bool            `gorm:"type:boolean;not null;default:false"`
	ApproverCount int             `gorm:"type:int;not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// RolePolicy rows exist for every role inside the cascading range of a
// leave type; all rows of one type carry the same accrual after a write.
// Rows that fall out of range on reapply are retired via soft delete.
type RolePolicy struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoleID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_role_policies_role"`
	LeaveTypeID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_role_policies_type"`
	AccrualPerYear decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID"`
}

func (RolePolicy) TableName() string {
	return "role_policies"
}
