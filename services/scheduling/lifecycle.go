package scheduling

import (
	"fmt"
	"time"

	"mindhaven/models"
)

// Transition applies a lifecycle change to an appointment and returns the
// updated copy, or ErrIllegalTransition without mutating anything. Legal
// moves:
//
//	booked     → inProgress | cancelled
//	booked     → missed      (only once now >= the appointment's end)
//	inProgress → completed | cancelled
//
// Terminal states are sinks. now is always supplied by the caller so the
// engine stays deterministic and clock-free.
func Transition(appt models.Appointment, target models.AppointmentStatus, now time.Time) (models.Appointment, error) {
	legal := false
	switch appt.Status {
	case models.StatusBooked:
		switch target {
		case models.StatusInProgress, models.StatusCancelled:
			legal = true
		case models.StatusMissed:
			legal = !now.Before(appt.End)
		}
	case models.StatusInProgress:
		legal = target == models.StatusCompleted || target == models.StatusCancelled
	}

	if !legal {
		return appt, &Error{
			Code:    CodeIllegalTransition,
			Message: fmt.Sprintf("cannot move appointment from %s to %s", appt.Status, target),
		}
	}

	appt.Status = target
	appt.UpdatedAt = now
	return appt, nil
}
