package scheduling

import (
	"testing"
	"time"

	"mindhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyGrid(t *testing.T) []models.CandidateSlot {
	t.Helper()
	slots := GenerateSlots(day(9, 0), day(17, 0), 60)
	require.NotEmpty(t, slots)
	return slots
}

func booked(start, end time.Time, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:             "appt-1",
		PsychologistID: "psy-1",
		Start:          start,
		End:            end,
		Status:         status,
	}
}

func TestValidateBookingAccepts(t *testing.T) {
	window := models.BookingWindow{Start: day(10, 0), End: day(11, 0)}
	assert.NoError(t, ValidateBooking(window, hourlyGrid(t), nil))
}

func TestValidateBookingMalformedWindow(t *testing.T) {
	err := ValidateBooking(models.BookingWindow{Start: day(11, 0), End: day(10, 0)}, hourlyGrid(t), nil)
	assert.True(t, IsCode(err, CodeMalformedWindow))

	// Zero-length windows are malformed too.
	err = ValidateBooking(models.BookingWindow{Start: day(10, 0), End: day(10, 0)}, hourlyGrid(t), nil)
	assert.True(t, IsCode(err, CodeMalformedWindow))
}

func TestValidateBookingOffGrid(t *testing.T) {
	// 09:15 on an hourly grid starting 09:00.
	window := models.BookingWindow{Start: day(9, 15), End: day(10, 15)}
	err := ValidateBooking(window, hourlyGrid(t), nil)
	assert.True(t, IsCode(err, CodeNotOnGrid))
}

func TestValidateBookingOverlap(t *testing.T) {
	existing := []models.Appointment{booked(day(10, 0), day(11, 0), models.StatusBooked)}

	// Requesting 10:30-11:30 against a booked 10:00-11:00.
	window := models.BookingWindow{Start: day(10, 30), End: day(11, 30)}
	grid := GenerateSlots(day(9, 0), day(17, 0), 30)
	err := ValidateBooking(window, grid, existing)
	assert.True(t, IsCode(err, CodeSlotUnavailable))

	// The exact same window is also unavailable.
	err = ValidateBooking(models.BookingWindow{Start: day(10, 0), End: day(11, 0)}, grid, existing)
	assert.True(t, IsCode(err, CodeSlotUnavailable))
}

func TestValidateBookingAdjacentWindowsDoNotOverlap(t *testing.T) {
	existing := []models.Appointment{booked(day(10, 0), day(11, 0), models.StatusBooked)}
	window := models.BookingWindow{Start: day(11, 0), End: day(12, 0)}
	assert.NoError(t, ValidateBooking(window, hourlyGrid(t), existing))
}

func TestValidateBookingIgnoresTerminalStatuses(t *testing.T) {
	window := models.BookingWindow{Start: day(10, 0), End: day(11, 0)}
	for _, status := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled, models.StatusMissed} {
		existing := []models.Appointment{booked(day(10, 0), day(11, 0), status)}
		assert.NoError(t, ValidateBooking(window, hourlyGrid(t), existing), "status %s", status)
	}
}

func TestValidateBookingInProgressStillBlocks(t *testing.T) {
	existing := []models.Appointment{booked(day(10, 0), day(11, 0), models.StatusInProgress)}
	window := models.BookingWindow{Start: day(10, 0), End: day(11, 0)}
	err := ValidateBooking(window, hourlyGrid(t), existing)
	assert.True(t, IsCode(err, CodeSlotUnavailable))
}

func TestFilterAvailable(t *testing.T) {
	grid := hourlyGrid(t) // 09:00-17:00, eight slots
	existing := []models.Appointment{
		booked(day(10, 0), day(11, 0), models.StatusBooked),
		booked(day(14, 0), day(15, 0), models.StatusCancelled), // terminal, does not block
	}

	available := FilterAvailable(grid, existing)
	require.Len(t, available, 7)
	for _, s := range available {
		assert.False(t, s.Start.Equal(day(10, 0)), "booked slot must be filtered out")
	}
}
