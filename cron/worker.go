// Package cron runs the background asynq worker that delivers appointment
// reminders when their scheduled time arrives.
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"servismart/config"
	appointmentRepo "servismart/database/repository/appointment"
	"servismart/models"
	"servismart/services/tasks"
	"servismart/utils"
)

// InitReminderWorker starts the asynq worker in the background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo))

	go func() {
		utils.GetLogger().Info("Starting reminder worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("Reminder worker stopped", zap.Error(err))
		}
	}()
}

// handleReminderTask re-reads the appointment at fire time so reminders for
// cancelled or already-completed bookings are dropped instead of delivered.
func handleReminderTask(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		oid, err := primitive.ObjectIDFromHex(payload.AppointmentID)
		if err != nil {
			return fmt.Errorf("bad appointment ID in reminder payload: %w", err)
		}

		appt, err := repo.GetByID(ctx, oid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				utils.GetLogger().Info("Skipping reminder for deleted appointment",
					zap.String("appointmentID", payload.AppointmentID))
				return nil
			}
			return err
		}
		if appt.IsCompleted {
			return nil
		}

		utils.GetLogger().Info("Appointment reminder due",
			zap.String("appointmentID", payload.AppointmentID),
			zap.String("name", appt.Name),
			zap.String("phone", appt.Phone),
			zap.String("date", appt.Date),
			zap.String("timeSlot", appt.TimeSlot))
		return nil
	}
}
