package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servismart/models"
)

func waitAppt(slot, vehicle, plan string, completed bool) models.Appointment {
	return models.Appointment{
		Date:            "2026-09-01",
		TimeSlot:        slot,
		SelectedVehicle: vehicle,
		SelectedPlan:    plan,
		IsCompleted:     completed,
	}
}

func TestEstimateWaitSingularMinutes(t *testing.T) {
	appointments := []models.Appointment{
		waitAppt("9:00 AM", "Sedan Car", "500", false),
	}

	msg := EstimateWait("10:00 AM", appointments, models.DefaultPricingCatalog())
	assert.Contains(t, msg, "20 minute")
	assert.Equal(t, "Estimated queue before this slot: 20 minutes", msg)
}

func TestEstimateWaitHoursAndMinutes(t *testing.T) {
	catalog := models.DefaultPricingCatalog()
	appointments := []models.Appointment{
		waitAppt("9:00 AM", "Sedan Car", "2000", false), // 1h 20m
		waitAppt("11:00 AM", "Sedan Car", "500", false), // 20m
	}

	msg := EstimateWait("2:30 PM", appointments, catalog)
	assert.Equal(t, "Estimated queue before this slot: 1 hour 40 minutes", msg)
}

func TestEstimateWaitOmitsZeroSegments(t *testing.T) {
	catalog := models.DefaultPricingCatalog()

	// Microbus full wash is exactly one hour: no minute segment.
	oneHour := []models.Appointment{waitAppt("9:00 AM", "Microbus", "1500", false)}
	assert.Equal(t, "Estimated queue before this slot: 1 hour",
		EstimateWait("11:00 AM", oneHour, catalog))

	// Two of them pluralize the hour.
	twoHours := []models.Appointment{
		waitAppt("9:00 AM", "Microbus", "1500", false),
		waitAppt("10:00 AM", "Microbus", "1500", false),
	}
	assert.Equal(t, "Estimated queue before this slot: 2 hours",
		EstimateWait("12:00 PM", twoHours, catalog))
}

func TestEstimateWaitSlotAlreadyBooked(t *testing.T) {
	appointments := []models.Appointment{
		waitAppt("10:00 AM", "Sedan Car", "500", false),
	}

	msg := EstimateWait("10:00 AM", appointments, models.DefaultPricingCatalog())
	assert.Equal(t, MsgSlotTaken, msg)
}

func TestEstimateWaitCompletedSlotIsFree(t *testing.T) {
	appointments := []models.Appointment{
		waitAppt("10:00 AM", "Sedan Car", "500", true),
	}

	// A completed appointment neither blocks the slot nor queues ahead.
	msg := EstimateWait("10:00 AM", appointments, models.DefaultPricingCatalog())
	assert.Equal(t, MsgCouldBeNext, msg)
}

func TestEstimateWaitInvalidTarget(t *testing.T) {
	msg := EstimateWait("sometime", nil, models.DefaultPricingCatalog())
	assert.Equal(t, MsgInvalidTime, msg)
}

func TestEstimateWaitEmptyDay(t *testing.T) {
	msg := EstimateWait("10:00 AM", nil, models.DefaultPricingCatalog())
	assert.Equal(t, MsgNoBookings, msg)
}

func TestEstimateWaitNothingBeforeTarget(t *testing.T) {
	appointments := []models.Appointment{
		waitAppt("3:00 PM", "Sedan Car", "500", false),
	}

	// All bookings are after the target slot.
	msg := EstimateWait("10:00 AM", appointments, models.DefaultPricingCatalog())
	assert.Equal(t, MsgCouldBeNext, msg)
}

func TestEstimateWaitIgnoresLaterAndCompleted(t *testing.T) {
	catalog := models.DefaultPricingCatalog()
	appointments := []models.Appointment{
		waitAppt("9:00 AM", "Sedan Car", "500", false),   // counts: 20m
		waitAppt("9:30 AM", "Sedan Car", "1000", true),   // completed, ignored
		waitAppt("11:00 AM", "Sedan Car", "2000", false), // after target, ignored
	}

	msg := EstimateWait("10:30 AM", appointments, catalog)
	assert.Equal(t, "Estimated queue before this slot: 20 minutes", msg)
}

func TestEstimateWaitFallbackDuration(t *testing.T) {
	appointments := []models.Appointment{
		waitAppt("9:00 AM", "Sedan Car", "999", false), // unknown plan: 30m fallback
	}

	msg := EstimateWait("10:00 AM", appointments, models.DefaultPricingCatalog())
	assert.Equal(t, "Estimated queue before this slot: 30 minutes", msg)
}
