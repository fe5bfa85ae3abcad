package leave

import (
	"time"

	"leaveflow/internal/org"
	"leaveflow/internal/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveRequest snapshots everything the approval flow needs at creation
// time: the manager chain is frozen into the approval records, and
// FinalApprovalLevel never changes even if the org tree does.
type LeaveRequest struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	LeaveTypeID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate          time.Time       `gorm:"type:date;not null"`
	EndDate            time.Time       `gorm:"type:date;not null"`
	HalfDay            bool            `gorm:"not null;default:false"`
	HalfDayType        *string         `gorm:"type:varchar(2)"`
	TotalDays          decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Reason             string          `gorm:"type:text"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	FinalApprovalLevel int             `gorm:"type:int;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User      *org.User         `gorm:"foreignKey:UserID"`
	LeaveType *policy.LeaveType `gorm:"foreignKey:LeaveTypeID"`
	Approvals []LeaveApproval   `gorm:"foreignKey:LeaveRequestID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type LeaveApproval struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ApproverID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Level          int        `gorm:"type:int;not null"`
	Status         string     `gorm:"type:varchar(20);not null"`
	Comments       *string    `gorm:"type:text"`
	ActedAt        *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Approver *org.User     `gorm:"foreignKey:ApproverID"`
	Request  *LeaveRequest `gorm:"foreignKey:LeaveRequestID"`
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}
