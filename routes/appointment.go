package routes

import (
	"mindhaven/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers all endpoints for the scheduling engine.
func RegisterAppointmentRoutes(r *gin.Engine) {
	psychologists := r.Group("/api/psychologists")
	{
		psychologists.GET("/:id/slots", handlers.GetAvailableSlotsHandler)
		psychologists.GET("/:id/availability", handlers.GetAvailabilityHandler)
		psychologists.PUT("/:id/availability", handlers.SetAvailabilityHandler)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.POST("", handlers.BookAppointmentHandler)
		appointments.GET("/:id", handlers.GetAppointmentHandler)
		appointments.PATCH("/:id/status", handlers.TransitionAppointmentHandler)
	}

	r.GET("/health", handlers.HealthHandler)
}
