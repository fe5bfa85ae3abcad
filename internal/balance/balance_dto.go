package balance

import "github.com/shopspring/decimal"

type RolloverRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	FromYear    int    `json:"from_year" binding:"required,min=2000,max=2100"`
}

type RolloverResult struct {
	FromYear  int `json:"from_year"`
	ToYear    int `json:"to_year"`
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

type SummaryItem struct {
	LeaveTypeID   string          `json:"leave_type_id"`
	LeaveTypeName string          `json:"leave_type_name"`
	Unbounded     bool            `json:"unbounded"`
	Balance       decimal.Decimal `json:"balance"`
	Used          decimal.Decimal `json:"used"`
}
