package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusBooked     AppointmentStatus = "booked"
	StatusInProgress AppointmentStatus = "inProgress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusMissed     AppointmentStatus = "missed"
)

// Terminal reports whether the status is a sink: no further transition is
// legal and the window no longer blocks other bookings.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusMissed:
		return true
	}
	return false
}

// Appointment is a committed reservation of a time window with a psychologist.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	PsychologistID string            `bson:"psychologist_id" json:"psychologistId"`
	ClientID       string            `bson:"client_id" json:"clientId"`
	Start          time.Time         `bson:"start" json:"start"`
	End            time.Time         `bson:"end" json:"end"`
	Status         AppointmentStatus `bson:"status" json:"status"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// Window returns the appointment's reserved time window.
func (a Appointment) Window() BookingWindow {
	return BookingWindow{Start: a.Start, End: a.End}
}

// BookingRequest is the payload for creating a new appointment.
type BookingRequest struct {
	PsychologistID  string    `json:"psychologistId" binding:"required"`
	ClientID        string    `json:"clientId" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
}
