package appointment

import "fmt"

// MissingSelectionError signals a required booking field was left empty.
type MissingSelectionError struct {
	Field string
}

func (e MissingSelectionError) Error() string {
	return fmt.Sprintf("missing required selection: %s", e.Field)
}

// SlotConflictError signals the target slot already has an active
// appointment. Alternatives carries up to three nearby free slots.
type SlotConflictError struct {
	Slot         string
	Alternatives []string
}

func (e SlotConflictError) Error() string {
	return fmt.Sprintf("time slot %s is already booked", e.Slot)
}

// InvalidTimeLabelError signals a slot label outside the daily catalog.
type InvalidTimeLabelError struct {
	Label string
}

func (e InvalidTimeLabelError) Error() string {
	return fmt.Sprintf("invalid time slot: %q", e.Label)
}

// UnknownPlanError signals a vehicle/plan pair absent from the pricing catalog.
type UnknownPlanError struct {
	Vehicle string
	Plan    string
}

func (e UnknownPlanError) Error() string {
	return fmt.Sprintf("plan %q is not offered for vehicle type %q", e.Plan, e.Vehicle)
}

// InvalidIDError signals a malformed appointment identifier.
type InvalidIDError struct {
	ID string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid appointment ID format: %q", e.ID)
}

// NotFoundError signals that no appointment matches the given identifier.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s not found", e.ID)
}
