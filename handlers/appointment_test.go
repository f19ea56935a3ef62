package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servismart/models"
	"servismart/services/appointment"
)

// stubService returns canned results so handler status mapping can be
// exercised without Mongo.
type stubService struct {
	bookErr      error
	booked       *models.Appointment
	markErr      error
	availability *models.DayAvailability
}

func (s *stubService) Book(context.Context, models.BookingInput) (*models.Appointment, error) {
	return s.booked, s.bookErr
}

func (s *stubService) ListByDate(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubService) ListAll(context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubService) MarkCompleted(context.Context, string) (int64, error) {
	if s.markErr != nil {
		return 0, s.markErr
	}
	return 1, nil
}

func (s *stubService) Availability(context.Context, string, string) (*models.DayAvailability, error) {
	return s.availability, nil
}

func newTestRouter(svc appointment.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(svc, models.DefaultPricingCatalog())
	r.GET("/appointments", h.ListAppointmentsHandler)
	r.POST("/appointments", h.CreateAppointmentHandler)
	r.PATCH("/appointments", h.CompleteAppointmentHandler)
	r.GET("/appointments/availability", h.AvailabilityHandler)
	r.GET("/appointments/options", h.WashMenuHandler)
	return r
}

func TestCreateAppointmentValidationStatus(t *testing.T) {
	router := newTestRouter(&stubService{bookErr: appointment.MissingSelectionError{Field: "date"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "select vehicle, plan, date, and time slot")
}

func TestCreateAppointmentConflictStatus(t *testing.T) {
	router := newTestRouter(&stubService{bookErr: appointment.SlotConflictError{
		Slot:         "10:00 AM",
		Alternatives: []string{"10:30 AM", "11:00 AM"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(`{"timeSlot":"10:00 AM"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Message      string   `json:"message"`
		Alternatives []string `json:"alternatives"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"10:30 AM", "11:00 AM"}, body.Alternatives)
}

func TestCreateAppointmentSuccessStatus(t *testing.T) {
	router := newTestRouter(&stubService{booked: &models.Appointment{TimeSlot: "10:00 AM"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(`{"timeSlot":"10:00 AM"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment created")
}

func TestCompleteAppointmentRequiresID(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteAppointmentNotFound(t *testing.T) {
	router := newTestRouter(&stubService{markErr: appointment.NotFoundError{ID: "abc"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments", strings.NewReader(`{"id":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailabilityRequiresDate(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments/availability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWashMenuListsCatalog(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments/options", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sedan Car")
	assert.Contains(t, w.Body.String(), "Tire Shine")
}
