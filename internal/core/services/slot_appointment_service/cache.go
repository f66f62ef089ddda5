package slot_appointment_service

import (
	"context"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
)

// Кэширование недельных расписаний

func (s *SlotAppointmentService) getWeeklySchedule(ctx context.Context, weekKey string) (*domain.Schedule, error) {
	if s.cachePort != nil {
		if schedule, exists := s.cachePort.GetSchedule(ctx, weekKey); exists {
			s.logger.Debug("slots.weekly.cache.hit", out.LogFields{
				"weekKey": weekKey,
			})
			return schedule, nil
		}
		s.logger.Debug("slots.weekly.cache.miss", out.LogFields{
			"weekKey": weekKey,
		})
	}

	schedule, err := s.availabilityPort.GetWeeklyAvailability(ctx, weekKey)
	if err != nil {
		return nil, err
	}

	// Отсутствие расписания не кэшируем, оно может появиться в любой момент
	if s.cachePort != nil && schedule != nil {
		s.cachePort.StoreSchedule(ctx, weekKey, schedule)
	}

	return schedule, nil
}

func (s *SlotAppointmentService) InvalidateWeekCache(ctx context.Context, weekKey string) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateSchedule(ctx, weekKey)

	return nil
}

func (s *SlotAppointmentService) InvalidateAllWeeksCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAllSchedules(ctx)

	return nil
}
