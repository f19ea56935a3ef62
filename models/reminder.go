package models

// ReminderPayload is the asynq task body for a pre-appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
}
