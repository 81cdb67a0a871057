package scheduling

import (
	"testing"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want models.TimePeriod
	}{
		{0, models.PeriodMorning},
		{6, models.PeriodMorning},
		{11, models.PeriodMorning},
		{12, models.PeriodAfternoon},
		{16, models.PeriodAfternoon},
		{17, models.PeriodEvening},
		{20, models.PeriodEvening},
		{21, models.PeriodNight},
		{23, models.PeriodNight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodOf(tt.hour), "hour %d", tt.hour)
	}
}

func TestPeriodOfCoversEveryHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		p := PeriodOf(h)
		assert.Contains(t, []models.TimePeriod{
			models.PeriodMorning, models.PeriodAfternoon, models.PeriodEvening, models.PeriodNight,
		}, p, "hour %d", h)
	}
}

func TestPeriodOfNormalizesOutOfRangeHours(t *testing.T) {
	assert.Equal(t, models.PeriodMorning, PeriodOf(24))
	assert.Equal(t, models.PeriodNight, PeriodOf(-1))
	assert.Equal(t, PeriodOf(9), PeriodOf(9+24))
}

func TestPeriodsInRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []models.TimePeriod
	}{
		{"morning only", 8, 11, []models.TimePeriod{models.PeriodMorning}},
		{"morning and afternoon", 9, 14, []models.TimePeriod{models.PeriodMorning, models.PeriodAfternoon}},
		{"full day", 0, 23, []models.TimePeriod{models.PeriodMorning, models.PeriodAfternoon, models.PeriodEvening, models.PeriodNight}},
		{"single hour", 18, 18, []models.TimePeriod{models.PeriodEvening}},
		{"inverted", 15, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodsInRange(tt.start, tt.end))
		})
	}
}
