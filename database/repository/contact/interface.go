package contactRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"servismart/database"
	"servismart/models"
)

type ContactRepository interface {
	Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a new MongoDB ContactRepository.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("contacts"),
	}
}
