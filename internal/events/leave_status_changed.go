package events

import "time"

type LeaveStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	LeaveRequestID string    `json:"leave_request_id"`
	UserID         string    `json:"user_id"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	ActedBy        string    `json:"acted_by,omitempty"`
	Level          int       `json:"level,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
