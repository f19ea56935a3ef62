package appointment

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "servismart/database/repository/appointment"
	"servismart/models"
	"servismart/services/schedule"
	"servismart/utils"
)

// Book validates the submission, re-checks the slot against the current day
// snapshot, and inserts the appointment. The pre-check avoids a write for
// slots already visible as taken; the unique partial index on
// (date, timeSlot, active) is what actually closes the race under
// concurrent submissions.
func (s *DefaultAppointmentService) Book(ctx context.Context, input models.BookingInput) (*models.Appointment, error) {
	if err := s.validateBooking(input); err != nil {
		return nil, err
	}

	dayAppointments, err := s.dayAppointments(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	allSlots := schedule.AllSlots()
	booked := schedule.BookedSlots(dayAppointments)
	for _, slot := range booked {
		if slot == input.TimeSlot {
			return nil, SlotConflictError{
				Slot:         input.TimeSlot,
				Alternatives: schedule.AlternativeSlots(input.TimeSlot, allSlots, schedule.AvailableSlots(allSlots, booked)),
			}
		}
	}

	appt := models.Appointment{
		Name:            input.Name,
		Phone:           input.Phone,
		VehicleMake:     input.VehicleMake,
		VehicleName:     input.VehicleName,
		VehicleModel:    input.VehicleModel,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		Comment:         input.Comment,
		Email:           input.Email,
		SelectedVehicle: input.SelectedVehicle,
		SelectedPlan:    input.SelectedPlan,
		ExtraFeatures:   input.ExtraFeatures,
	}

	created, err := s.Repo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			// Lost the race between the pre-check and the insert.
			return nil, SlotConflictError{
				Slot:         input.TimeSlot,
				Alternatives: schedule.AlternativeSlots(input.TimeSlot, allSlots, schedule.AvailableSlots(allSlots, booked)),
			}
		}
		return nil, err
	}

	s.invalidateDay(ctx, input.Date)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*created); err != nil {
			utils.GetLogger().Warn("Failed to schedule appointment reminder",
				zap.String("appointmentID", created.ID.Hex()),
				zap.Error(err))
		}
	}

	return created, nil
}

func (s *DefaultAppointmentService) validateBooking(input models.BookingInput) error {
	required := []struct {
		field string
		value string
	}{
		{"selectedVehicle", input.SelectedVehicle},
		{"selectedPlan", input.SelectedPlan},
		{"date", input.Date},
		{"timeSlot", input.TimeSlot},
		{"email", input.Email},
	}
	for _, req := range required {
		if req.value == "" {
			return MissingSelectionError{Field: req.field}
		}
	}

	inCatalog := false
	for _, slot := range schedule.AllSlots() {
		if slot == input.TimeSlot {
			inCatalog = true
			break
		}
	}
	if !inCatalog {
		return InvalidTimeLabelError{Label: input.TimeSlot}
	}

	pricing, ok := s.Catalog[input.SelectedVehicle]
	if !ok {
		return UnknownPlanError{Vehicle: input.SelectedVehicle, Plan: input.SelectedPlan}
	}
	for _, price := range pricing.Prices {
		if strconv.Itoa(price) == input.SelectedPlan {
			return nil
		}
	}
	return UnknownPlanError{Vehicle: input.SelectedVehicle, Plan: input.SelectedPlan}
}

// ListByDate returns the appointments for a date.
func (s *DefaultAppointmentService) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.Repo.GetByDate(ctx, date)
}

// ListAll returns every appointment on record.
func (s *DefaultAppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

// MarkCompleted flips one appointment's isCompleted flag, releasing its
// slot. Returns the number of modified documents.
func (s *DefaultAppointmentService) MarkCompleted(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, InvalidIDError{ID: id}
	}

	appt, err := s.Repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, NotFoundError{ID: id}
		}
		return 0, err
	}

	modified, err := s.Repo.MarkCompleted(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, NotFoundError{ID: id}
		}
		return 0, err
	}

	s.invalidateDay(ctx, appt.Date)
	return modified, nil
}
