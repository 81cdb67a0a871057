package handlers

import (
	"net/http"
	"strconv"
	"time"

	"mindhaven/config"
	"mindhaven/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailableSlotsHandler returns the bookable candidate slots for a
// psychologist over a date range. Defaults to the configured booking window
// starting today.
func GetAvailableSlotsHandler(c *gin.Context) {
	logger := getLogger(c)
	psychologistID := c.Param("id")

	from := time.Now().UTC()
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, config.AppConfig.BookingWindowDays)
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	duration := 0
	if v := c.Query("duration"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'duration', expected minutes"})
			return
		}
		duration = parsed
	}

	slots, err := ApptService.GetAvailableSlots(psychologistID, from, to, duration)
	if err != nil {
		logger.Warn("Failed to compute available slots",
			zap.String("psychologistID", psychologistID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "No availability configured for psychologist"})
		return
	}

	// An empty result is "nothing to show", not a failure.
	if slots == nil {
		slots = []models.CandidateSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SetAvailabilityHandler stores a psychologist's weekly working hours.
func SetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	psychologistID := c.Param("id")

	var input struct {
		Days []models.WeeklyAvailability `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	schedule, err := ApptService.SetWeeklyAvailability(psychologistID, input.Days)
	if err != nil {
		logger.Warn("Rejected weekly availability",
			zap.String("psychologistID", psychologistID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetAvailabilityHandler returns a psychologist's stored weekly hours.
func GetAvailabilityHandler(c *gin.Context) {
	psychologistID := c.Param("id")

	schedule, err := ApptService.GetWeeklyAvailability(psychologistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No availability configured for psychologist"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}
