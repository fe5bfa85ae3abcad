package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, initialStatus(0))
	assert.Equal(t, StatusPending, initialStatus(1))
	assert.Equal(t, StatusPendingL1, initialStatus(2))
	assert.Equal(t, StatusPendingL1, initialStatus(3))
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		finalLevel int
		want       string
	}{
		{"single level completes", 1, 1, StatusApproved},
		{"first of three advances", 1, 3, StatusPendingL2},
		{"second of three advances", 2, 3, StatusPendingL3},
		{"last of three completes", 3, 3, StatusApproved},
		{"last of two completes", 2, 2, StatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextStatus(tt.level, tt.finalLevel))
		})
	}
}

func TestActiveLevel(t *testing.T) {
	assert.Equal(t, 1, activeLevel(StatusPending))
	assert.Equal(t, 1, activeLevel(StatusPendingL1))
	assert.Equal(t, 2, activeLevel(StatusPendingL2))
	assert.Equal(t, 3, activeLevel(StatusPendingL3))
	assert.Equal(t, 0, activeLevel(StatusApproved))
	assert.Equal(t, 0, activeLevel(StatusRejected))
	assert.Equal(t, 0, activeLevel(StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusRejected, StatusCancelled} {
		assert.True(t, isTerminal(status), status)
	}
	for _, status := range []string{StatusPending, StatusPendingL1, StatusPendingL2, StatusPendingL3} {
		assert.False(t, isTerminal(status), status)
	}
}
