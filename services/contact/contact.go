// Package contact implements the contact-message feature: customers submit
// simple inquiries which staff can list and delete.
package contact

import (
	"context"
	"fmt"

	contactRepo "servismart/database/repository/contact"
	"servismart/models"
)

// ContactService manages customer inquiry messages.
type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// MissingFieldError signals a required contact form field was left empty.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (s *DefaultContactService) Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	if msg.Name == "" {
		return nil, MissingFieldError{Field: "name"}
	}
	if msg.Email == "" {
		return nil, MissingFieldError{Field: "email"}
	}
	if msg.Message == "" {
		return nil, MissingFieldError{Field: "message"}
	}
	return s.Repo.Create(ctx, msg)
}

func (s *DefaultContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultContactService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
