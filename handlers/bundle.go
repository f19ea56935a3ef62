package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Appointment endpoints.
	ListAppointmentsHandler    gin.HandlerFunc
	CreateAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
	AvailabilityHandler        gin.HandlerFunc
	WashMenuHandler            gin.HandlerFunc

	// Contact endpoints.
	SubmitContactHandler gin.HandlerFunc
	ListContactsHandler  gin.HandlerFunc
	DeleteContactHandler gin.HandlerFunc
}
