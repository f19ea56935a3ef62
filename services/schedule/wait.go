package schedule

import (
	"fmt"
	"sort"
	"strings"

	"servismart/models"
)

// User-facing wait estimate messages.
const (
	MsgSlotTaken   = "This slot is already booked. Please choose another."
	MsgInvalidTime = "Invalid time selected."
	MsgCouldBeNext = "No active bookings before this slot. You could be next!"
	MsgNoBookings  = "No bookings found for this date."
	queueMsgPrefix = "Estimated queue before this slot: "
)

// EstimateWait computes a human-readable estimate of the queue ahead of the
// target slot, given the full appointment set for that date. It is a pure
// function of its inputs: the caller re-invokes it whenever the target or
// the day's snapshot changes.
func EstimateWait(target string, appointments []models.Appointment, catalog models.PricingCatalog) string {
	for _, slot := range BookedSlots(appointments) {
		if slot == target {
			return MsgSlotTaken
		}
	}

	targetMinutes, err := SlotToMinutes(target)
	if err != nil {
		return MsgInvalidTime
	}

	// Active appointments strictly before the target, earliest first.
	// Appointments with unparseable slots are skipped rather than guessed at.
	type prior struct {
		appt    models.Appointment
		minutes int
	}
	var priors []prior
	for _, appt := range appointments {
		if !appt.Active() {
			continue
		}
		minutes, err := SlotToMinutes(appt.TimeSlot)
		if err != nil || minutes >= targetMinutes {
			continue
		}
		priors = append(priors, prior{appt: appt, minutes: minutes})
	}
	sort.Slice(priors, func(i, j int) bool { return priors[i].minutes < priors[j].minutes })

	totalMinutes := 0
	for _, p := range priors {
		totalMinutes += PlanDuration(catalog, p.appt.SelectedVehicle, p.appt.SelectedPlan)
	}

	if totalMinutes <= 0 {
		if len(priors) == 0 && len(appointments) > 0 {
			return MsgCouldBeNext
		}
		if len(appointments) == 0 {
			return MsgNoBookings
		}
		return MsgCouldBeNext
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	msg := queueMsgPrefix
	if hours > 0 {
		msg += fmt.Sprintf("%d hour%s ", hours, plural(hours))
	}
	if minutes > 0 {
		msg += fmt.Sprintf("%d minute%s", minutes, plural(minutes))
	}
	return strings.TrimSpace(msg)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
