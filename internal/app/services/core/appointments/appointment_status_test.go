package appointments

import (
	"testing"

	"clinicstack-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestIsTransitionAllowed(t *testing.T) {
	t.Run("Scheduled Transitions", func(t *testing.T) {
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusConfirmed))
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusInProgress))
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCancelled))
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusNoShow))
		assert.False(t, isTransitionAllowed(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCompleted))
	})

	t.Run("Confirmed Transitions", func(t *testing.T) {
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusInProgress))
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled))
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusNoShow))
		assert.False(t, isTransitionAllowed(constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusScheduled))
		assert.False(t, isTransitionAllowed(constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted))
	})

	t.Run("In Progress Only Completes", func(t *testing.T) {
		assert.True(t, isTransitionAllowed(constvars.AppointmentStatusInProgress, constvars.AppointmentStatusCompleted))
		assert.False(t, isTransitionAllowed(constvars.AppointmentStatusInProgress, constvars.AppointmentStatusCancelled))
		assert.False(t, isTransitionAllowed(constvars.AppointmentStatusInProgress, constvars.AppointmentStatusNoShow))
	})

	t.Run("Terminal States Have No Transitions", func(t *testing.T) {
		terminals := []string{
			constvars.AppointmentStatusCompleted,
			constvars.AppointmentStatusCancelled,
			constvars.AppointmentStatusNoShow,
		}
		targets := []string{
			constvars.AppointmentStatusScheduled,
			constvars.AppointmentStatusConfirmed,
			constvars.AppointmentStatusInProgress,
			constvars.AppointmentStatusCompleted,
			constvars.AppointmentStatusCancelled,
			constvars.AppointmentStatusNoShow,
		}
		for _, current := range terminals {
			for _, next := range targets {
				assert.False(t, isTransitionAllowed(current, next), "%s -> %s should be rejected", current, next)
			}
		}
	})

	t.Run("Unknown Status", func(t *testing.T) {
		assert.False(t, isTransitionAllowed("unknown", constvars.AppointmentStatusConfirmed))
	})
}

func TestContainsSlot(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}

	assert.True(t, containsSlot(slots, "09:30"))
	assert.False(t, containsSlot(slots, "09:15"))
	assert.False(t, containsSlot(nil, "09:00"))
}
