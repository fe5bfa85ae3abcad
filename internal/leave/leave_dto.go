package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLeaveRequest struct {
	LeaveTypeID string  `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	HalfDay     bool    `json:"half_day"`
	HalfDayType *string `json:"half_day_type" binding:"omitempty,oneof=AM PM"`
	Reason      string  `json:"reason" binding:"max=500"`
}

type ActionRequest struct {
	Comment *string `json:"comment" binding:"omitempty,max=500"`
}

type ApprovalResponse struct {
	ID           string     `json:"id"`
	Level        int        `json:"level"`
	Status       string     `json:"status"`
	ApproverID   string     `json:"approver_id"`
	ApproverName string     `json:"approver_name,omitempty"`
	Comments     *string    `json:"comments,omitempty"`
	ActedAt      *time.Time `json:"acted_at,omitempty"`
}

type LeaveRequestResponse struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	LeaveTypeID        string             `json:"leave_type_id"`
	LeaveTypeName      string             `json:"leave_type_name,omitempty"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	HalfDay            bool               `json:"half_day"`
	HalfDayType        *string            `json:"half_day_type,omitempty"`
	TotalDays          decimal.Decimal    `json:"total_days"`
	Reason             string             `json:"reason,omitempty"`
	Status             string             `json:"status"`
	FinalApprovalLevel int                `json:"final_approval_level"`
	Approvals          []ApprovalResponse `json:"approvals,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

type IncomingApprovalResponse struct {
	ApprovalID    string          `json:"approval_id"`
	Level         int             `json:"level"`
	RequestID     string          `json:"request_id"`
	RequesterName string          `json:"requester_name"`
	LeaveTypeName string          `json:"leave_type_name"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalDays     decimal.Decimal `json:"total_days"`
	RequestStatus string          `json:"request_status"`
}

type OnLeaveTodayResponse struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	LeaveTypeName string `json:"leave_type_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	HalfDay       bool   `json:"half_day"`
}

const dateLayout = "2006-01-02"

func mapToApprovalResponse(a LeaveApproval) ApprovalResponse {
	resp := ApprovalResponse{
		ID:         a.ID.String(),
		Level:      a.Level,
		Status:     a.Status,
		ApproverID: a.ApproverID.String(),
		Comments:   a.Comments,
		ActedAt:    a.ActedAt,
	}
	if a.Approver != nil {
		resp.ApproverName = a.Approver.Name
	}
	return resp
}

func mapToRequestResponse(req LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                 req.ID.String(),
		UserID:             req.UserID.String(),
		LeaveTypeID:        req.LeaveTypeID.String(),
		StartDate:          req.StartDate.Format(dateLayout),
		EndDate:            req.EndDate.Format(dateLayout),
		HalfDay:            req.HalfDay,
		HalfDayType:        req.HalfDayType,
		TotalDays:          req.TotalDays,
		Reason:             req.Reason,
		Status:             req.Status,
		FinalApprovalLevel: req.FinalApprovalLevel,
		CreatedAt:          req.CreatedAt,
	}
	if req.LeaveType != nil {
		resp.LeaveTypeName = req.LeaveType.Name
	}
	for _, a := range req.Approvals {
		resp.Approvals = append(resp.Approvals, mapToApprovalResponse(a))
	}
	return resp
}
