package appointment

import (
	"time"

	"mindhaven/models"
)

// AppointmentService exposes the scheduling engine to the API layer and the
// background sweeper. All times crossing this boundary are UTC.
type AppointmentService interface {
	GetAvailableSlots(psychologistID string, from, to time.Time, durationMinutes int) ([]models.CandidateSlot, error)
	BookAppointment(req models.BookingRequest) (*models.Appointment, error)
	GetAppointment(appointmentID string) (*models.Appointment, error)
	TransitionAppointment(appointmentID string, target models.AppointmentStatus, now time.Time) (*models.Appointment, error)
	SetWeeklyAvailability(psychologistID string, days []models.WeeklyAvailability) (*models.AvailabilitySchedule, error)
	GetWeeklyAvailability(psychologistID string) (*models.AvailabilitySchedule, error)
	SweepMissed(now time.Time) (int, error)
}
