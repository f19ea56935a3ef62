package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment represents a single car-wash booking record.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Phone           string             `bson:"phone" json:"phone"`
	VehicleMake     string             `bson:"vehicleMake" json:"vehicleMake"`
	VehicleName     string             `bson:"vehicleName" json:"vehicleName"`
	VehicleModel    string             `bson:"vehicleModel" json:"vehicleModel"`
	Date            string             `bson:"date" json:"date"`         // "YYYY-MM-DD"
	TimeSlot        string             `bson:"timeSlot" json:"timeSlot"` // e.g. "2:30 PM"
	Comment         string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Email           string             `bson:"email" json:"email"`
	SelectedVehicle string             `bson:"selectedVehicle" json:"selectedVehicle"` // key into the pricing catalog
	SelectedPlan    string             `bson:"selectedPlan" json:"selectedPlan"`       // plan price serialized as a string
	ExtraFeatures   []string           `bson:"extraFeatures" json:"extraFeatures"`
	IsCompleted     bool               `bson:"isCompleted" json:"isCompleted"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookingInput carries the fields a customer submits when creating an
// appointment. The server assigns ID, CreatedAt and IsCompleted.
type BookingInput struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	VehicleMake     string   `json:"vehicleMake"`
	VehicleName     string   `json:"vehicleName"`
	VehicleModel    string   `json:"vehicleModel"`
	Date            string   `json:"date"`
	TimeSlot        string   `json:"timeSlot"`
	Comment         string   `json:"comment"`
	Email           string   `json:"email"`
	SelectedVehicle string   `json:"selectedVehicle"`
	SelectedPlan    string   `json:"selectedPlan"`
	ExtraFeatures   []string `json:"extraFeatures"`
}

// Active reports whether the appointment still occupies its slot.
func (a Appointment) Active() bool {
	return !a.IsCompleted
}
