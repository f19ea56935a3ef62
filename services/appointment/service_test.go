package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "servismart/database/repository/appointment"
	"servismart/models"
)

// fakeRepo is an in-memory AppointmentRepository that mimics the unique
// partial index on (date, timeSlot) for active appointments.
type fakeRepo struct {
	appointments []models.Appointment
	createCalls  int
	findErr      error
}

func (f *fakeRepo) Create(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	f.createCalls++
	for _, existing := range f.appointments {
		if existing.Active() && existing.Date == appt.Date && existing.TimeSlot == appt.TimeSlot {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}
	appt.ID = primitive.NewObjectID()
	appt.CreatedAt = time.Now()
	f.appointments = append(f.appointments, appt)
	return &appt, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, date string) ([]models.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Appointment
	for _, appt := range f.appointments {
		if appt.Date == date {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]models.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.appointments, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	for _, appt := range f.appointments {
		if appt.ID == id {
			a := appt
			return &a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) MarkCompleted(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, appt := range f.appointments {
		if appt.ID == id {
			f.appointments[i].IsCompleted = true
			return 1, nil
		}
	}
	return 0, mongo.ErrNoDocuments
}

func (f *fakeRepo) EnsureIndexes() error { return nil }

type fakeScheduler struct {
	scheduled []models.Appointment
}

func (f *fakeScheduler) ScheduleReminder(appt models.Appointment) error {
	f.scheduled = append(f.scheduled, appt)
	return nil
}

func newTestService(repo *fakeRepo, reminders ReminderScheduler) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:      repo,
		Catalog:   models.DefaultPricingCatalog(),
		Reminders: reminders,
	}
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Name:            "Ali",
		Phone:           "03001234567",
		Date:            "2026-09-01",
		TimeSlot:        "10:00 AM",
		Email:           "ali@example.com",
		SelectedVehicle: "Sedan Car",
		SelectedPlan:    "1000",
		ExtraFeatures:   []string{"Tire Shine"},
	}
}

func TestBookCreatesAppointment(t *testing.T) {
	repo := &fakeRepo{}
	scheduler := &fakeScheduler{}
	svc := newTestService(repo, scheduler)

	created, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.False(t, created.IsCompleted)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "10:00 AM", created.TimeSlot)
	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, created.ID, scheduler.scheduled[0].ID)
}

func TestBookMissingSelection(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	input := validInput()
	input.SelectedPlan = ""

	_, err := svc.Book(context.Background(), input)
	var missing MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "selectedPlan", missing.Field)
	assert.Zero(t, repo.createCalls, "validation failures must not reach the repository")
}

func TestBookRequiresExplicitIdentity(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	input := validInput()
	input.Email = ""

	_, err := svc.Book(context.Background(), input)
	var missing MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "email", missing.Field)
}

func TestBookRejectsUnknownSlotLabel(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	input := validInput()
	input.TimeSlot = "9:15 PM"

	_, err := svc.Book(context.Background(), input)
	var invalid InvalidTimeLabelError
	require.ErrorAs(t, err, &invalid)
}

func TestBookRejectsUnknownPlan(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	input := validInput()
	input.SelectedPlan = "999"

	_, err := svc.Book(context.Background(), input)
	var unknown UnknownPlanError
	require.ErrorAs(t, err, &unknown)
}

func TestBookTakenSlotRejectedWithoutWrite(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	first, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, first)
	writesAfterFirst := repo.createCalls

	_, err = svc.Book(context.Background(), validInput())
	var conflict SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "10:00 AM", conflict.Slot)
	assert.NotEmpty(t, conflict.Alternatives)
	assert.LessOrEqual(t, len(conflict.Alternatives), 3)
	assert.NotContains(t, conflict.Alternatives, "10:00 AM")
	assert.Equal(t, writesAfterFirst, repo.createCalls, "pre-check must reject before the insert")
}

func TestBookCompletedAppointmentFreesSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	first, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.MarkCompleted(context.Background(), first.ID.Hex())
	require.NoError(t, err)

	// Same slot, same date: bookable again once the first wash is done.
	second, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMarkCompletedInvalidID(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	_, err := svc.MarkCompleted(context.Background(), "not-a-hex-id")
	var invalid InvalidIDError
	require.ErrorAs(t, err, &invalid)
}

func TestMarkCompletedNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	_, err := svc.MarkCompleted(context.Background(), primitive.NewObjectID().Hex())
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAvailabilitySetsAreDisjoint(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)

	availability, err := svc.Availability(context.Background(), "2026-09-01", "")
	require.NoError(t, err)

	assert.Contains(t, availability.BookedSlots, "10:00 AM")
	for _, slot := range availability.BookedSlots {
		assert.NotContains(t, availability.AvailableSlots, slot)
	}
	assert.Len(t, availability.AvailableSlots, 25-len(availability.BookedSlots))
}

func TestAvailabilityTargetSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.Book(context.Background(), validInput())
	require.NoError(t, err)

	// Free target: wait estimate, no alternatives.
	free, err := svc.Availability(context.Background(), "2026-09-01", "11:00 AM")
	require.NoError(t, err)
	assert.Contains(t, free.WaitingTime, "40 minute")
	assert.Empty(t, free.Alternatives)

	// Taken target: blocked message plus nearby suggestions.
	taken, err := svc.Availability(context.Background(), "2026-09-01", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "This slot is already booked. Please choose another.", taken.WaitingTime)
	assert.NotEmpty(t, taken.Alternatives)
}

func TestAvailabilityFetchFailureIsNotAnEmptyDay(t *testing.T) {
	repo := &fakeRepo{findErr: assert.AnError}
	svc := newTestService(repo, nil)

	availability, err := svc.Availability(context.Background(), "2026-09-01", "")
	assert.Error(t, err)
	assert.Nil(t, availability)
}
