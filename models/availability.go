package models

// DayAvailability is the availability snapshot returned for a single date,
// optionally evaluated against a target slot the customer is eyeing.
type DayAvailability struct {
	Date           string   `json:"date"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
	WaitingTime    string   `json:"waitingTime,omitempty"`
	Alternatives   []string `json:"alternatives,omitempty"`
}
