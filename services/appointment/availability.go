package appointment

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"servismart/models"
	"servismart/services/schedule"
	"servismart/utils"
)

// Availability computes the booked/available slot sets for a date from one
// immutable snapshot of that day's appointments. When targetSlot is given it
// also carries the queue wait estimate and, for a taken target, up to three
// alternative suggestions.
func (s *DefaultAppointmentService) Availability(ctx context.Context, date, targetSlot string) (*models.DayAvailability, error) {
	dayAppointments, err := s.dayAppointments(ctx, date)
	if err != nil {
		// Never report a failed fetch as an empty day.
		return nil, err
	}

	allSlots := schedule.AllSlots()
	booked := schedule.BookedSlots(dayAppointments)
	available := schedule.AvailableSlots(allSlots, booked)

	result := &models.DayAvailability{
		Date:           date,
		BookedSlots:    booked,
		AvailableSlots: available,
	}

	if targetSlot != "" {
		result.WaitingTime = schedule.EstimateWait(targetSlot, dayAppointments, s.Catalog)
		for _, slot := range booked {
			if slot == targetSlot {
				result.Alternatives = schedule.AlternativeSlots(targetSlot, allSlots, available)
				break
			}
		}
	}

	return result, nil
}

// dayAppointments returns the appointment snapshot for a date, serving from
// the Redis cache when possible. Cache failures fall through to Mongo.
func (s *DefaultAppointmentService) dayAppointments(ctx context.Context, date string) ([]models.Appointment, error) {
	if s.Cache == nil {
		return s.Repo.GetByDate(ctx, date)
	}

	key := utils.DayCachePrefix + date
	if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	}

	appointments, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(appointments); err == nil {
		if err := s.Cache.Set(ctx, key, data, utils.DayCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache day snapshot", zap.String("date", date), zap.Error(err))
		}
	}
	return appointments, nil
}

// invalidateDay drops the cached snapshot after any write touching the date.
func (s *DefaultAppointmentService) invalidateDay(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.DayCachePrefix+date).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate day snapshot", zap.String("date", date), zap.Error(err))
	}
}
