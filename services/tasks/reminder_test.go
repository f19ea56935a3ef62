package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servismart/models"
)

func TestReminderFireTimeLeadsSlot(t *testing.T) {
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	fireAt, ok := reminderFireTime(date, "10:00 AM")
	require.True(t, ok)

	assert.Equal(t, 9, fireAt.Hour())
	assert.Equal(t, 30, fireAt.Minute())
	assert.Equal(t, date, fireAt.Format("2006-01-02"))
}

func TestReminderFireTimeSkipsPastSlots(t *testing.T) {
	_, ok := reminderFireTime("2020-01-01", "10:00 AM")
	assert.False(t, ok)
}

func TestReminderFireTimeRejectsBadInput(t *testing.T) {
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	_, ok := reminderFireTime(date, "half past ten")
	assert.False(t, ok)

	_, ok = reminderFireTime("next tuesday", "10:00 AM")
	assert.False(t, ok)
}

func TestNewReminderTaskPayloadRoundTrips(t *testing.T) {
	payload := models.ReminderPayload{
		AppointmentID: "64f0c0ffee",
		Name:          "Amina",
		Phone:         "0712345678",
		Date:          "2026-09-07",
		TimeSlot:      "10:00 AM",
	}

	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, TypeSendReminder, task.Type())

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
