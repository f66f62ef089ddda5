package slot_appointment_service

import (
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/utils"
)

// EnumerateDailySlots возвращает начала всех слотов-кандидатов одного дня недели.
//
// Слоты идут от StartHour с шагом slotDuration, пока время меньше EndHour.
// Обед отсекается правилом "время <= LunchStartHour или время > LunchEndHour":
// слот, начинающийся ровно в начале обеда, остается, ровно в конце обеда - нет.
// Если LunchEndHour >= EndHour, вечерних слотов нет.
func EnumerateDailySlots(monday time.Time, dayOffset int, workPeriod domain.WorkPeriod, slotDuration time.Duration) []time.Time {
	slots := make([]time.Time, 0)
	if slotDuration <= 0 {
		return slots
	}

	day := utils.StartCurrentDay(monday)
	lunchStart := workPeriod.LunchStart()
	lunchEnd := workPeriod.LunchEnd()

	for tod := workPeriod.Start(); tod < workPeriod.End(); tod += slotDuration {
		if tod <= lunchStart || tod > lunchEnd {
			slots = append(slots, atTimeOfDay(day, dayOffset, tod))
		}
	}

	return slots
}

// atTimeOfDay строит время по настенным часам, чтобы переход на летнее время
// не сдвигал слоты.
func atTimeOfDay(day time.Time, dayOffset int, tod time.Duration) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+dayOffset, 0, 0, 0, int(tod), day.Location())
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
