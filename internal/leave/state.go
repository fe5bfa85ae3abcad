package leave

// Request lifecycle statuses. Multi-level requests move through the
// PENDING_Lk sequence; single-level requests use the plain PENDING state.
const (
	StatusPending   = "PENDING"
	StatusPendingL1 = "PENDING_L1"
	StatusPendingL2 = "PENDING_L2"
	StatusPendingL3 = "PENDING_L3"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// Per-level approval record statuses.
const (
	ApprovalPending   = "PENDING"
	ApprovalApproved  = "APPROVED"
	ApprovalRejected  = "REJECTED"
	ApprovalCancelled = "CANCELLED"
)

var pendingLevels = map[int]string{
	1: StatusPendingL1,
	2: StatusPendingL2,
	3: StatusPendingL3,
}

// initialStatus derives the status a freshly created request starts in.
// A zero final level means the auto-approve path already ran.
func initialStatus(finalLevel int) string {
	switch {
	case finalLevel == 0:
		return StatusApproved
	case finalLevel == 1:
		return StatusPending
	default:
		return StatusPendingL1
	}
}

// nextStatus is the transition taken after the approval at level is
// recorded. The last level completes the request.
func nextStatus(level, finalLevel int) string {
	if level >= finalLevel {
		return StatusApproved
	}
	return pendingLevels[level+1]
}

// activeLevel maps a request status to the approval level currently
// awaiting action; zero for terminal states.
func activeLevel(status string) int {
	switch status {
	case StatusPending, StatusPendingL1:
		return 1
	case StatusPendingL2:
		return 2
	case StatusPendingL3:
		return 3
	default:
		return 0
	}
}

func isTerminal(status string) bool {
	switch status {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}
