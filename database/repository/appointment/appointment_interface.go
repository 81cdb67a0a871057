package appointmentRepo

import (
	"time"

	"mindhaven/models"
)

// AppointmentRepository persists appointments and is the final arbiter for
// double-booking: Create must fail atomically when a non-terminal
// appointment already holds the same (psychologist, start) pair, and
// UpdateStatus must commit a transition only when the stored status still
// matches the one the transition was computed from.
type AppointmentRepository interface {
	EnsureIndexes() error
	Create(appt *models.Appointment) error
	GetByID(appointmentID string) (*models.Appointment, error)
	ListForPsychologist(psychologistID string, from, to time.Time, nonTerminalOnly bool) ([]models.Appointment, error)
	UpdateStatus(appointmentID string, from, to models.AppointmentStatus, now time.Time) error
	ListOverdueBooked(now time.Time) ([]models.Appointment, error)
}
