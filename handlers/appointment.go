package handlers

import (
	"net/http"
	"time"

	"mindhaven/models"
	"mindhaven/services/appointment"
	"mindhaven/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApptService is assigned during startup once the repositories are wired.
var ApptService appointment.AppointmentService

// statusForSchedulingError maps engine error codes to HTTP statuses. Anything
// without a code is an internal failure.
func statusForSchedulingError(err error) int {
	switch {
	case scheduling.IsCode(err, scheduling.CodeMalformedWindow):
		return http.StatusBadRequest
	case scheduling.IsCode(err, scheduling.CodeNotOnGrid):
		return http.StatusUnprocessableEntity
	case scheduling.IsCode(err, scheduling.CodeSlotUnavailable):
		return http.StatusConflict
	case scheduling.IsCode(err, scheduling.CodeIllegalTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// BookAppointmentHandler creates a new appointment after validation.
func BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := ApptService.BookAppointment(req)
	if err != nil {
		status := statusForSchedulingError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to book appointment", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to book appointment"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler returns a single appointment by ID.
func GetAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	appt, err := ApptService.GetAppointment(id)
	if err != nil {
		logger.Warn("Appointment not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// TransitionAppointmentHandler moves an appointment through its lifecycle.
func TransitionAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := ApptService.TransitionAppointment(id, input.Status, time.Now().UTC())
	if err != nil {
		status := statusForSchedulingError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update appointment status",
				zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}
