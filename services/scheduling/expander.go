package scheduling

import (
	"fmt"
	"time"

	"mindhaven/models"
)

// ExpandAvailability walks every calendar date in [rangeStart, rangeEnd] and
// generates candidate slots for each date whose weekday is marked available.
// The per-call duration wins when positive; otherwise the day entry's
// configured session duration is used. Day entries with malformed times or
// an inverted window contribute no slots. An inverted range yields nil.
//
// All wall-clock times are bound to the date in rangeStart's location; the
// service layer normalizes everything to UTC before reaching the engine.
func ExpandAvailability(days []models.WeeklyAvailability, rangeStart, rangeEnd time.Time, durationMinutes int) []models.CandidateSlot {
	if rangeStart.After(rangeEnd) {
		return nil
	}

	byWeekday := make(map[int]models.WeeklyAvailability, len(days))
	for _, d := range days {
		byWeekday[d.DayOfWeek] = d
	}

	var out []models.CandidateSlot
	first := truncateToDay(rangeStart)
	last := truncateToDay(rangeEnd)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		entry, ok := byWeekday[int(day.Weekday())]
		if !ok || !entry.Available {
			continue
		}

		dayStart, err := BindClock(day, entry.StartTime)
		if err != nil {
			continue
		}
		dayEnd, err := BindClock(day, entry.EndTime)
		if err != nil {
			continue
		}

		dur := durationMinutes
		if dur <= 0 {
			dur = entry.SessionDuration
		}
		out = append(out, GenerateSlots(dayStart, dayEnd, dur)...)
	}
	return out
}

// BindClock attaches a naive "HH:MM" wall-clock string to a concrete date.
func BindClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid wall-clock time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
