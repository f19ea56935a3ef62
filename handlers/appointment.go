package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servismart/models"
	"servismart/services/appointment"
	"servismart/utils"
)

// AppointmentHandler exposes the booking operations over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Catalog models.PricingCatalog
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService, catalog models.PricingCatalog) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Catalog: catalog}
}

// ListAppointmentsHandler returns appointments, optionally filtered by the
// date query parameter (YYYY-MM-DD). Without a date it returns all records.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	date := c.Query("date")

	var (
		appointments []models.Appointment
		err          error
	)
	if date != "" {
		appointments, err = h.Service.ListByDate(c.Request.Context(), date)
	} else {
		appointments, err = h.Service.ListAll(c.Request.Context())
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching appointments", err.Error())
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CreateAppointmentHandler books a new appointment.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	created, err := h.Service.Book(c.Request.Context(), input)
	if err != nil {
		switch e := err.(type) {
		case appointment.MissingSelectionError:
			utils.JSONError(c, http.StatusBadRequest, "Please select vehicle, plan, date, and time slot.", e.Error())
		case appointment.InvalidTimeLabelError:
			utils.JSONError(c, http.StatusBadRequest, "Invalid time slot selected", e.Error())
		case appointment.UnknownPlanError:
			utils.JSONError(c, http.StatusBadRequest, "Selected plan is not offered", e.Error())
		case appointment.SlotConflictError:
			c.JSON(http.StatusConflict, gin.H{
				"message":      "Selected time slot was just booked. Please choose another.",
				"alternatives": e.Alternatives,
			})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Error creating appointment", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created",
		"appointment": created,
	})
}

// CompleteAppointmentHandler marks one appointment as completed.
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Appointment ID is required", "")
		return
	}

	modified, err := h.Service.MarkCompleted(c.Request.Context(), body.ID)
	if err != nil {
		switch err.(type) {
		case appointment.InvalidIDError:
			utils.JSONError(c, http.StatusBadRequest, "Invalid Appointment ID format", err.Error())
		case appointment.NotFoundError:
			utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Error updating appointment", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Appointment marked as completed successfully",
		"modifiedCount": modified,
	})
}

// AvailabilityHandler returns the slot availability snapshot for a date,
// optionally evaluated against a target slot.
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	availability, err := h.Service.Availability(c.Request.Context(), date, c.Query("slot"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error computing availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, availability)
}

// WashMenuHandler returns the static pricing catalog and add-on features the
// booking form is built from.
func (h *AppointmentHandler) WashMenuHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pricing":       h.Catalog,
		"extraFeatures": models.ExtraFeatureOptions,
	})
}
