package models

import "time"

// WeeklyAvailability is one day-of-week entry of a psychologist's recurring
// working hours. Times are naive wall-clock "HH:MM" strings; the scheduling
// engine binds them to concrete dates when expanding slots.
type WeeklyAvailability struct {
	DayOfWeek       int    `bson:"day_of_week" json:"dayOfWeek"` // 0=Sunday … 6=Saturday
	Available       bool   `bson:"available" json:"available"`
	StartTime       string `bson:"start_time" json:"startTime"` // e.g. "09:00"
	EndTime         string `bson:"end_time" json:"endTime"`     // e.g. "17:00"
	SessionDuration int    `bson:"session_duration" json:"sessionDuration"` // minutes
}

// AvailabilitySchedule is the stored weekly configuration for a psychologist.
type AvailabilitySchedule struct {
	PsychologistID string               `bson:"psychologist_id" json:"psychologistId"`
	Days           []WeeklyAvailability `bson:"days" json:"days"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updatedAt"`
}

// DayEntry returns the entry for the given weekday, if one exists.
func (s AvailabilitySchedule) DayEntry(dayOfWeek int) (WeeklyAvailability, bool) {
	for _, d := range s.Days {
		if d.DayOfWeek == dayOfWeek {
			return d, true
		}
	}
	return WeeklyAvailability{}, false
}
