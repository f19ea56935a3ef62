package appointment

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "servismart/database/repository/appointment"
	"servismart/models"
)

// AppointmentService defines the booking operations exposed over HTTP.
type AppointmentService interface {
	Book(ctx context.Context, input models.BookingInput) (*models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	MarkCompleted(ctx context.Context, id string) (int64, error)
	Availability(ctx context.Context, date, targetSlot string) (*models.DayAvailability, error)
}

// ReminderScheduler enqueues a pre-appointment reminder for a freshly
// created booking.
type ReminderScheduler interface {
	ScheduleReminder(appt models.Appointment) error
}

// DefaultAppointmentService implements AppointmentService backed by the
// Mongo repository, with a short-lived Redis snapshot cache per date.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Catalog   models.PricingCatalog
	Cache     *redis.Client     // optional; nil disables snapshot caching
	Reminders ReminderScheduler // optional; nil disables reminders
}
