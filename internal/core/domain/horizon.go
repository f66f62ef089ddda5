package domain

import (
	"fmt"
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/utils"
)

// BookingHorizon ограничивает, насколько далеко вперед можно искать и записываться.
// Одна и та же проверка применяется в HTTP-контроллере и в сервисе.
type BookingHorizon struct {
	MaxMonths int
}

func (h BookingHorizon) Latest(now time.Time) time.Time {
	return utils.AddMonths(now, h.MaxMonths)
}

// Check возвращает ErrDateOutOfRange, если desired раньше now или позже now + MaxMonths.
// Обе границы включительно.
func (h BookingHorizon) Check(now, desired time.Time) error {
	if desired.Before(now) {
		return fmt.Errorf("%w: the appointment desired date cannot be earlier than the current date", ErrDateOutOfRange)
	}
	if desired.After(h.Latest(now)) {
		return fmt.Errorf("%w: the appointment desired date cannot be later than %d months", ErrDateOutOfRange, h.MaxMonths)
	}
	return nil
}
