package scheduling

import (
	"testing"
	"time"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekdaysOnly is Monday to Friday, 09:00-17:00, hourly sessions.
func weekdaysOnly() []models.WeeklyAvailability {
	var days []models.WeeklyAvailability
	for dow := 1; dow <= 5; dow++ {
		days = append(days, models.WeeklyAvailability{
			DayOfWeek:       dow,
			Available:       true,
			StartTime:       "09:00",
			EndTime:         "17:00",
			SessionDuration: 60,
		})
	}
	return days
}

func TestExpandAvailabilitySkipsUnavailableDays(t *testing.T) {
	// 2026-09-07 is a Monday; the range covers a full week.
	rangeStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	slots := ExpandAvailability(weekdaysOnly(), rangeStart, rangeEnd, 60)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		wd := s.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
	// Five working days, eight hourly slots each.
	assert.Len(t, slots, 5*8)
}

func TestExpandAvailabilityExplicitlyUnavailableDay(t *testing.T) {
	days := weekdaysOnly()
	days = append(days, models.WeeklyAvailability{
		DayOfWeek: 0, Available: false, StartTime: "09:00", EndTime: "17:00", SessionDuration: 60,
	})
	rangeStart := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // a Sunday
	slots := ExpandAvailability(days, rangeStart, rangeStart, 60)
	assert.Empty(t, slots)
}

func TestExpandAvailabilityInvertedRange(t *testing.T) {
	rangeStart := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, ExpandAvailability(weekdaysOnly(), rangeStart, rangeEnd, 60))
}

func TestExpandAvailabilityAscendingOrder(t *testing.T) {
	rangeStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	slots := ExpandAvailability(weekdaysOnly(), rangeStart, rangeEnd, 60)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start))
	}
}

func TestExpandAvailabilityFallsBackToSessionDuration(t *testing.T) {
	days := []models.WeeklyAvailability{{
		DayOfWeek: 1, Available: true, StartTime: "09:00", EndTime: "12:00", SessionDuration: 90,
	}}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots := ExpandAvailability(days, monday, monday, 0)
	require.Len(t, slots, 2) // 09:00-10:30, 10:30-12:00
	assert.Equal(t, 90, slots[0].DurationMinutes)

	// An explicit duration overrides the configured one.
	slots = ExpandAvailability(days, monday, monday, 60)
	assert.Len(t, slots, 3)
}

func TestExpandAvailabilitySkipsMalformedEntries(t *testing.T) {
	days := []models.WeeklyAvailability{
		{DayOfWeek: 1, Available: true, StartTime: "not-a-time", EndTime: "12:00", SessionDuration: 60},
		{DayOfWeek: 2, Available: true, StartTime: "14:00", EndTime: "09:00", SessionDuration: 60},
	}
	rangeStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, ExpandAvailability(days, rangeStart, rangeEnd, 60))
}

func TestExpandAvailabilityTagsPeriods(t *testing.T) {
	days := []models.WeeklyAvailability{{
		DayOfWeek: 1, Available: true, StartTime: "10:00", EndTime: "19:00", SessionDuration: 60,
	}}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots := ExpandAvailability(days, monday, monday, 60)
	require.Len(t, slots, 9)
	assert.Equal(t, []models.TimePeriod{models.PeriodMorning}, slots[0].Periods)   // 10:00
	assert.Equal(t, []models.TimePeriod{models.PeriodAfternoon}, slots[2].Periods) // 12:00
	assert.Equal(t, []models.TimePeriod{models.PeriodEvening}, slots[8].Periods)   // 18:00
}
