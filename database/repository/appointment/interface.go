package appointmentRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"servismart/database"
	"servismart/models"
)

// ErrSlotTaken signals that an active appointment already occupies the
// (date, timeSlot) pair. It is produced by the unique partial index, so the
// check-and-insert is atomic at the collection.
var ErrSlotTaken = errors.New("time slot already has an active appointment")

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	MarkCompleted(ctx context.Context, id primitive.ObjectID) (int64, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
