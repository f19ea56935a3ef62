// Package tasks builds and enqueues background jobs for the booking flow.
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"servismart/models"
	"servismart/services/schedule"
	"servismart/utils"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders on the asynq queue.
type Scheduler struct {
	Client *asynq.Client
}

// ScheduleReminder queues a reminder to fire shortly before the booked slot.
// Slots whose reminder time has already passed are skipped silently.
func (s *Scheduler) ScheduleReminder(appt models.Appointment) error {
	fireAt, ok := reminderFireTime(appt.Date, appt.TimeSlot)
	if !ok {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID.Hex(),
		Name:          appt.Name,
		Phone:         appt.Phone,
		Date:          appt.Date,
		TimeSlot:      appt.TimeSlot,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}

func reminderFireTime(date, slot string) (time.Time, bool) {
	minutes, err := schedule.SlotToMinutes(slot)
	if err != nil {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	fireAt := day.Add(time.Duration(minutes)*time.Minute - utils.ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}
