package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"servismart/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	appt.ID = primitive.NilObjectID
	appt.IsCompleted = false
	appt.CreatedAt = time.Now()
	if appt.ExtraFeatures == nil {
		appt.ExtraFeatures = []string{}
	}

	res, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected type for inserted appointment ID: %T", res.InsertedID)
	}
	appt.ID = oid
	return &appt, nil
}

func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []appointmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}

	appointments := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		appointments = append(appointments, doc.toModel())
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc appointmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	appt := doc.toModel()
	return &appt, nil
}

// MarkCompleted flips isCompleted to true exactly once and stamps updatedAt.
// Returns mongo.ErrNoDocuments when no appointment matches.
func (r *mongoAppointmentRepo) MarkCompleted(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isCompleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return res.ModifiedCount, nil
}
