package scheduling

import "mindhaven/models"

// PeriodOf maps an hour of day to its display bucket: morning 00–11,
// afternoon 12–16, evening 17–20, night 21–23. Hours outside 0–23 are
// normalized mod 24 so the function is total.
func PeriodOf(hour int) models.TimePeriod {
	h := ((hour % 24) + 24) % 24
	switch {
	case h <= 11:
		return models.PeriodMorning
	case h <= 16:
		return models.PeriodAfternoon
	case h <= 20:
		return models.PeriodEvening
	default:
		return models.PeriodNight
	}
}

// PeriodsInRange accumulates the bucket of every whole hour in
// [startHour, endHour]. Used for display aggregation only ("offers morning
// and afternoon sessions"); individual slots are tagged by their start hour.
func PeriodsInRange(startHour, endHour int) []models.TimePeriod {
	if endHour < startHour {
		return nil
	}
	var out []models.TimePeriod
	seen := make(map[models.TimePeriod]bool, 4)
	for h := startHour; h <= endHour; h++ {
		p := PeriodOf(h)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
