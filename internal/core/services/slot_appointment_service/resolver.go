package slot_appointment_service

import (
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

// ResolveWeeklyFreeSlots собирает свободные слоты с понедельника по пятницу.
//
// Для каждого дня берутся кандидаты из EnumerateDailySlots, при futureOnly
// отбрасываются начавшиеся раньше now, затем отбрасываются кандидаты, время
// которых совпадает со временем начала любого занятого слота этого дня.
// Порядок: день недели, затем время.
func ResolveWeeklyFreeSlots(schedule *domain.Schedule, monday time.Time, now time.Time, futureOnly bool) domain.ScheduleResponse {
	slotDuration := schedule.SlotDuration()
	freeSlots := make([]domain.Slot, 0)

	for dayOffset, daySchedule := range schedule.Days() {
		// День без расписания - просто нет слотов
		if daySchedule == nil {
			continue
		}

		busyTimes := busyTimesOfDay(daySchedule.BusySlots)

		for _, start := range EnumerateDailySlots(monday, dayOffset, daySchedule.WorkPeriod, slotDuration) {
			if futureOnly && start.Before(now) {
				continue
			}
			if _, busy := busyTimes[timeOfDay(start)]; busy {
				continue
			}

			freeSlots = append(freeSlots, domain.Slot{
				Start: start,
				End:   start.Add(slotDuration),
			})
		}
	}

	return domain.ScheduleResponse{
		FacilityID: schedule.Facility.FacilityID,
		FreeSlots:  freeSlots,
	}
}

// Сравниваем только время суток: кандидаты уже привязаны к своему дню
func busyTimesOfDay(busySlots []domain.Slot) map[time.Duration]struct{} {
	busyTimes := make(map[time.Duration]struct{}, len(busySlots))
	for _, slot := range busySlots {
		busyTimes[timeOfDay(slot.Start)] = struct{}{}
	}
	return busyTimes
}
