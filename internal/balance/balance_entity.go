package balance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance is one ledger row per user, leave type, and calendar year.
// Balance counts down as leave is consumed; Used counts up. For unbounded
// leave types Balance stays zero and only Used moves.
type LeaveBalance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_balance_user_type_year"`
	LeaveTypeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_balance_user_type_year"`
	Year        int             `gorm:"type:int;not null;uniqueIndex:uq_balance_user_type_year"`
	Balance     decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	Used        decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
