package models

import "time"

// TimePeriod is a display bucket for the hour a slot starts in.
type TimePeriod string

const (
	PeriodMorning   TimePeriod = "morning"   // 00:00–11:59
	PeriodAfternoon TimePeriod = "afternoon" // 12:00–16:59
	PeriodEvening   TimePeriod = "evening"   // 17:00–20:59
	PeriodNight     TimePeriod = "night"     // 21:00–23:59
)

// CandidateSlot is a computed, not-yet-booked window on a psychologist's
// availability grid. Candidate slots are transient: they are recomputed per
// query and never persisted.
type CandidateSlot struct {
	Start           time.Time    `json:"start"`
	End             time.Time    `json:"end"`
	DurationMinutes int          `json:"durationMinutes"`
	Periods         []TimePeriod `json:"periods"`
}

// BookingWindow is a client-requested time window.
type BookingWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
