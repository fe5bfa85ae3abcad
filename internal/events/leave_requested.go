package events

import "time"

const LeaveRequestLifecycleTopic = "leave.request.lifecycle.v1"

type LeaveRequestedEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id"`
	LeaveRequestID     string    `json:"leave_request_id"`
	UserID             string    `json:"user_id"`
	LeaveTypeID        string    `json:"leave_type_id"`
	TotalDays          string    `json:"total_days"`
	Status             string    `json:"status"`
	FinalApprovalLevel int       `json:"final_approval_level"`
	OccurredAt         time.Time `json:"occurred_at"`
}
