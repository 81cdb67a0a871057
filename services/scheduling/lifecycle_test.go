package scheduling

import (
	"testing"
	"time"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apptWith(status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:     "appt-1",
		Start:  day(10, 0),
		End:    day(11, 0),
		Status: status,
	}
}

func TestTransitionLegalMoves(t *testing.T) {
	now := day(10, 5)
	tests := []struct {
		from, to models.AppointmentStatus
	}{
		{models.StatusBooked, models.StatusInProgress},
		{models.StatusBooked, models.StatusCancelled},
		{models.StatusInProgress, models.StatusCompleted},
		{models.StatusInProgress, models.StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			updated, err := Transition(apptWith(tt.from), tt.to, now)
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			assert.Equal(t, now, updated.UpdatedAt)
		})
	}
}

func TestTransitionDoesNotMutateOnFailure(t *testing.T) {
	appt := apptWith(models.StatusCompleted)
	got, err := Transition(appt, models.StatusCancelled, day(12, 0))
	assert.Error(t, err)
	assert.Equal(t, appt, got)
}

func TestTransitionTerminalStatesAreSinks(t *testing.T) {
	targets := []models.AppointmentStatus{
		models.StatusBooked, models.StatusInProgress, models.StatusCompleted,
		models.StatusCancelled, models.StatusMissed,
	}
	for _, terminal := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled, models.StatusMissed} {
		for _, target := range targets {
			_, err := Transition(apptWith(terminal), target, day(12, 0))
			assert.True(t, IsCode(err, CodeIllegalTransition), "%s -> %s must fail", terminal, target)
		}
	}
}

func TestTransitionIllegalMoves(t *testing.T) {
	now := day(10, 5)
	tests := []struct {
		from, to models.AppointmentStatus
	}{
		{models.StatusBooked, models.StatusCompleted},
		{models.StatusBooked, models.StatusBooked},
		{models.StatusInProgress, models.StatusBooked},
		{models.StatusInProgress, models.StatusMissed},
		{models.StatusBooked, "nonsense"},
	}
	for _, tt := range tests {
		_, err := Transition(apptWith(tt.from), tt.to, now)
		assert.True(t, IsCode(err, CodeIllegalTransition), "%s -> %s must fail", tt.from, tt.to)
	}
}

func TestTransitionMissedRequiresElapsedWindow(t *testing.T) {
	appt := apptWith(models.StatusBooked) // ends at 11:00

	// Too early: the window has not elapsed.
	_, err := Transition(appt, models.StatusMissed, day(10, 59))
	assert.True(t, IsCode(err, CodeIllegalTransition))

	// Exactly at the end is late enough.
	updated, err := Transition(appt, models.StatusMissed, day(11, 0))
	require.NoError(t, err)
	assert.Equal(t, models.StatusMissed, updated.Status)

	// Well past the end works too, but only once: missed is terminal.
	updated, err = Transition(appt, models.StatusMissed, day(12, 0))
	require.NoError(t, err)
	_, err = Transition(updated, models.StatusMissed, day(13, 0))
	assert.True(t, IsCode(err, CodeIllegalTransition))
}

func TestTransitionInProgressNeverBecomesMissed(t *testing.T) {
	// Once a session started, an elapsed window must not flip it to missed.
	appt := apptWith(models.StatusInProgress)
	_, err := Transition(appt, models.StatusMissed, appt.End.Add(time.Hour))
	assert.True(t, IsCode(err, CodeIllegalTransition))
}
