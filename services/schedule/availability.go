package schedule

import "servismart/models"

// BookedSlots returns the time slot of every active appointment in the
// given day's records. Completed appointments release their slot.
func BookedSlots(appointments []models.Appointment) []string {
	var booked []string
	for _, appt := range appointments {
		if appt.Active() {
			booked = append(booked, appt.TimeSlot)
		}
	}
	return booked
}

// AvailableSlots filters the full slot catalog down to entries not present
// in the booked set, preserving chronological order.
func AvailableSlots(all, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}
	available := make([]string, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// AlternativeSlots suggests up to three free slots near a taken target.
// It walks forward from the target first, then backward, prepending earlier
// slots so the result stays chronologically ordered. An unknown target
// yields no suggestions.
func AlternativeSlots(target string, all, available []string) []string {
	targetIdx := -1
	for i, slot := range all {
		if slot == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil
	}

	free := make(map[string]struct{}, len(available))
	for _, slot := range available {
		free[slot] = struct{}{}
	}

	var alternatives []string
	for i := targetIdx + 1; i < len(all) && len(alternatives) < 3; i++ {
		if _, ok := free[all[i]]; ok {
			alternatives = append(alternatives, all[i])
		}
	}
	for i := targetIdx - 1; i >= 0 && len(alternatives) < 3; i-- {
		if _, ok := free[all[i]]; ok {
			alternatives = append([]string{all[i]}, alternatives...)
		}
	}
	return alternatives
}
