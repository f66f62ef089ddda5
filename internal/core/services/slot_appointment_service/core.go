package slot_appointment_service

import (
	"context"
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
	"github.com/suchimauz/slot-appointment-service/internal/utils"
)

type SlotAppointmentService struct {
	availabilityPort out.AvailabilityPort
	cachePort        out.CachePort
	eventPort        out.EventPort
	clock            out.ClockPort
	logger           out.LoggerPort
	horizon          domain.BookingHorizon
	futureOnly       bool
}

// cachePort и eventPort могут быть nil, если кэш или RabbitMQ выключены.
func NewSlotAppointmentService(
	cfg *config.Config,
	availabilityPort out.AvailabilityPort,
	cachePort out.CachePort,
	eventPort out.EventPort,
	clock out.ClockPort,
	logger out.LoggerPort,
) *SlotAppointmentService {
	return &SlotAppointmentService{
		availabilityPort: availabilityPort,
		cachePort:        cachePort,
		eventPort:        eventPort,
		clock:            clock,
		logger:           logger.WithModule("SlotAppointmentService"),
		horizon:          domain.BookingHorizon{MaxMonths: cfg.Appointment.MaxMonthsForAnAppointment},
		futureOnly:       cfg.Appointment.FutureSlotsOnly,
	}
}

func (s *SlotAppointmentService) GetWeeklyFreeSlots(ctx context.Context, desiredDate time.Time) (*domain.ScheduleResponse, error) {
	now := s.clock.Now()

	if err := s.horizon.Check(now, desiredDate); err != nil {
		s.logger.Warn("slots.weekly.date_out_of_range", out.LogFields{
			"desiredDate": desiredDate,
			"now":         now,
			"maxMonths":   s.horizon.MaxMonths,
		})
		return nil, err
	}

	monday := utils.MondayOfWeek(desiredDate)
	weekKey := monday.Format(utils.WeekKeyLayout)

	s.logger.Info("slots.weekly.started", out.LogFields{
		"desiredDate": desiredDate,
		"weekKey":     weekKey,
	})

	fetchTiming := domain.NewStageTiming("slots.weekly.availability.fetch")
	schedule, err := s.getWeeklySchedule(ctx, weekKey)
	if err != nil {
		s.logger.Error("slots.weekly.availability.fetch_failed", out.LogFields{
			"weekKey": weekKey,
			"error":   err.Error(),
		})
		return nil, err
	}

	if schedule == nil {
		s.logger.Error("slots.weekly.availability.not_found", out.LogFields{
			"weekKey": weekKey,
		})
		return nil, domain.ErrNotFound
	}

	s.logger.Debug(fetchTiming.Event, out.LogFields{
		"weekKey": weekKey,
		"timing":  fetchTiming.Elapse(),
	})

	s.warnInvalidWorkPeriods(weekKey, schedule)

	response := ResolveWeeklyFreeSlots(schedule, monday, now, s.futureOnly)

	s.logger.Info("slots.weekly.resolved", out.LogFields{
		"weekKey":    weekKey,
		"facilityId": response.FacilityID,
		"freeSlots":  len(response.FreeSlots),
		"futureOnly": s.futureOnly,
	})

	return &response, nil
}

func (s *SlotAppointmentService) TakeAppointmentByUser(ctx context.Context, request *domain.AppointmentRequest) (bool, error) {
	if request == nil {
		s.logger.Error("appointment.take.invalid_request", out.LogFields{})
		return false, domain.ErrInvalidInput
	}

	appointment := TranslateAppointmentRequest(*request)

	booked, err := s.availabilityPort.TakeSlot(ctx, appointment)
	if err != nil {
		s.logger.Error("appointment.take.failed", out.LogFields{
			"facilityId": appointment.FacilityID,
			"start":      appointment.Start,
			"error":      err.Error(),
		})
		return false, err
	}

	if !booked {
		// Сервис записи отказал без ошибки; решение оставляем вызывающему
		s.logger.Warn("booking.rejected", out.LogFields{
			"facilityId": appointment.FacilityID,
			"start":      appointment.Start,
		})
		return false, nil
	}

	s.logger.Info("appointment.take.booked", out.LogFields{
		"facilityId": appointment.FacilityID,
		"start":      appointment.Start,
		"end":        appointment.End,
	})

	if s.cachePort != nil {
		s.cachePort.InvalidateSchedule(ctx, utils.WeekKey(request.Start))
	}

	if s.eventPort != nil {
		if err := s.eventPort.PublishAppointmentBooked(ctx, appointment); err != nil {
			s.logger.Error("appointment.take.publish_failed", out.LogFields{
				"facilityId": appointment.FacilityID,
				"start":      appointment.Start,
				"error":      err.Error(),
			})
		}
	}

	return true, nil
}

func (s *SlotAppointmentService) warnInvalidWorkPeriods(weekKey string, schedule *domain.Schedule) {
	if schedule.SlotDurationMinutes <= 0 {
		s.logger.Warn("slots.weekly.schedule.invalid_slot_duration", out.LogFields{
			"weekKey":             weekKey,
			"slotDurationMinutes": schedule.SlotDurationMinutes,
		})
	}

	for dayOffset, daySchedule := range schedule.Days() {
		if daySchedule == nil {
			continue
		}
		if err := daySchedule.WorkPeriod.Validate(); err != nil {
			s.logger.Warn("slots.weekly.schedule.invalid_work_period", out.LogFields{
				"weekKey":   weekKey,
				"dayOffset": dayOffset,
				"error":     err.Error(),
			})
		}
	}
}
