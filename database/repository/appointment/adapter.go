package appointmentRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"servismart/models"
)

// appointmentDoc is the raw collection shape. Documents written before the
// schema migration carry vehicleType/plan instead of selectedVehicle/
// selectedPlan, and some stored extraFeatures as a bare scalar. The adapter
// folds all of that into the canonical model here, so nothing above the
// repository ever branches on legacy field names.
type appointmentDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	VehicleMake     string             `bson:"vehicleMake,omitempty"`
	VehicleName     string             `bson:"vehicleName,omitempty"`
	VehicleModel    string             `bson:"vehicleModel,omitempty"`
	Date            string             `bson:"date,omitempty"`
	TimeSlot        string             `bson:"timeSlot,omitempty"`
	Comment         string             `bson:"comment,omitempty"`
	Email           string             `bson:"email,omitempty"`
	SelectedVehicle string             `bson:"selectedVehicle,omitempty"`
	LegacyVehicle   string             `bson:"vehicleType,omitempty"`
	SelectedPlan    string             `bson:"selectedPlan,omitempty"`
	LegacyPlan      string             `bson:"plan,omitempty"`
	ExtraFeatures   interface{}        `bson:"extraFeatures,omitempty"`
	IsCompleted     bool               `bson:"isCompleted,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty"`
}

func (d appointmentDoc) toModel() models.Appointment {
	vehicle := d.SelectedVehicle
	if vehicle == "" {
		vehicle = d.LegacyVehicle
	}
	plan := d.SelectedPlan
	if plan == "" {
		plan = d.LegacyPlan
	}
	return models.Appointment{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleMake:     d.VehicleMake,
		VehicleName:     d.VehicleName,
		VehicleModel:    d.VehicleModel,
		Date:            d.Date,
		TimeSlot:        d.TimeSlot,
		Comment:         d.Comment,
		Email:           d.Email,
		SelectedVehicle: vehicle,
		SelectedPlan:    plan,
		ExtraFeatures:   normalizeFeatures(d.ExtraFeatures),
		IsCompleted:     d.IsCompleted,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// normalizeFeatures coerces whatever shape extraFeatures took in older
// documents (array, bare string, missing) into a string slice.
func normalizeFeatures(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case primitive.A:
		features := make([]string, 0, len(v))
		for _, item := range v {
			features = append(features, fmt.Sprint(item))
		}
		return features
	case []string:
		return v
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
