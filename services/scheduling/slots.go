package scheduling

import (
	"time"

	"mindhaven/models"
)

// GenerateSlots expands a daily window into fixed-length candidate slots.
// Starting at dayStart it emits [cursor, cursor+duration) and advances the
// cursor by the duration; a final partial slot is discarded so no slot
// extends past dayEnd. A non-positive duration or an empty window yields
// nil, which is a valid empty result rather than an error.
func GenerateSlots(dayStart, dayEnd time.Time, durationMinutes int) []models.CandidateSlot {
	if durationMinutes <= 0 || !dayStart.Before(dayEnd) {
		return nil
	}

	step := time.Duration(durationMinutes) * time.Minute
	var slots []models.CandidateSlot
	for cursor := dayStart; !cursor.Add(step).After(dayEnd); cursor = cursor.Add(step) {
		slots = append(slots, models.CandidateSlot{
			Start:           cursor,
			End:             cursor.Add(step),
			DurationMinutes: durationMinutes,
			Periods:         []models.TimePeriod{PeriodOf(cursor.Hour())},
		})
	}
	return slots
}
