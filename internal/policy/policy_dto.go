package policy

import "github.com/shopspring/decimal"

type CreateLeaveTypeRequest struct {
	Name          string          `json:"name" binding:"required"`
	MaxPerYear    decimal.Decimal `json:"max_per_year"`
	Unbounded     bool            `json:"unbounded"`
	ApproverCount int             `json:"approver_count"`
}

type UpdateLeaveTypeRequest struct {
	Name          string          `json:"name" binding:"required"`
	MaxPerYear    decimal.Decimal `json:"max_per_year"`
	Unbounded     bool            `json:"unbounded"`
	ApproverCount int             `json:"approver_count"`
}

type LeaveTypeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	MaxPerYear    decimal.Decimal `json:"max_per_year"`
	Unbounded     bool            `json:"unbounded"`
	ApproverCount int             `json:"approver_count"`
}

type ApplyPolicyRequest struct {
	LeaveTypeID     string          `json:"leave_type_id" binding:"required,uuid"`
	AccrualPerYear  decimal.Decimal `json:"accrual_per_year"`
	ThresholdRoleID string          `json:"threshold_role_id" binding:"required,uuid"`
}

type CanonicalPolicyResponse struct {
	LeaveTypeID    string          `json:"leave_type_id"`
	LeaveTypeName  string          `json:"leave_type_name"`
	MaxPerYear     decimal.Decimal `json:"max_per_year"`
	Unbounded      bool            `json:"unbounded"`
	ApproverCount  int             `json:"approver_count"`
	AccrualPerYear decimal.Decimal `json:"accrual_per_year"`
	ThresholdRole  string          `json:"threshold_role"`
}

type ReconcileResult struct {
	Updated  int `json:"updated"`
	Inserted int `json:"inserted"`
	Retired  int `json:"retired"`
}
