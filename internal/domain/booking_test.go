package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"accept: pending -> confirmed", StatusPending, StatusConfirmed, true},
		{"reject: pending -> cancelled", StatusPending, StatusCancelled, true},
		{"complete: confirmed -> completed", StatusConfirmed, StatusCompleted, true},
		{"external: confirmed -> in_progress", StatusConfirmed, StatusInProgress, true},
		{"external: in_progress -> completed", StatusInProgress, StatusCompleted, true},
		{"external: pending -> no_show", StatusPending, StatusNoShow, true},
		{"external: confirmed -> no_show", StatusConfirmed, StatusNoShow, true},
		{"external: in_progress -> no_show", StatusInProgress, StatusNoShow, true},

		{"pending cannot complete", StatusPending, StatusCompleted, false},
		{"confirmed cannot go back to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
		{"completed cannot repeat", StatusCompleted, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseStatus("paused")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
