// Package schedule holds the pure scheduling logic for the wash bay: the
// fixed daily slot catalog, service duration lookup, availability filtering
// and queue wait estimation.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot boundaries of the working day, in hours.
const (
	openingHour = 8
	closingHour = 20
)

// InvalidSlotMinutes is the sentinel returned by SlotToMinutes for labels
// that cannot be parsed.
const InvalidSlotMinutes = -1

// AllSlots returns every bookable half-hour label from 8:00 AM through
// 8:00 PM inclusive, in chronological order.
func AllSlots() []string {
	slots := make([]string, 0, 2*(closingHour-openingHour)+1)
	for hour := openingHour; hour <= closingHour; hour++ {
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}
		display := hour % 12
		if display == 0 {
			display = 12
		}
		slots = append(slots, fmt.Sprintf("%d:00 %s", display, period))
		if hour < closingHour {
			slots = append(slots, fmt.Sprintf("%d:30 %s", display, period))
		}
	}
	return slots
}

// SlotToMinutes converts a label of the form "H:MM AM" into minutes since
// midnight. The meridiem marker is case-insensitive. 12 AM maps to 0 and
// 12 PM to 720. On a malformed label it returns InvalidSlotMinutes and an
// error instead of panicking.
func SlotToMinutes(label string) (int, error) {
	if !strings.Contains(label, ":") || !strings.Contains(label, " ") {
		return InvalidSlotMinutes, fmt.Errorf("invalid time label %q", label)
	}

	parts := strings.SplitN(label, " ", 2)
	clock, meridiem := parts[0], strings.TrimSpace(parts[1])

	hm := strings.SplitN(clock, ":", 2)
	if len(hm) != 2 {
		return InvalidSlotMinutes, fmt.Errorf("invalid time label %q", label)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return InvalidSlotMinutes, fmt.Errorf("invalid hour in time label %q", label)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return InvalidSlotMinutes, fmt.Errorf("invalid minute in time label %q", label)
	}

	switch strings.ToUpper(meridiem) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour*60 + minute, nil
}
