package out

import (
	"context"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

type AvailabilityPort interface {
	// Недельное расписание по дате понедельника в формате yyyyMMdd.
	// nil без ошибки, если расписания нет
	GetWeeklyAvailability(ctx context.Context, weekKey string) (*domain.Schedule, error)

	// Отправка записи; false, если сервис записи ее не принял
	TakeSlot(ctx context.Context, appointment domain.Appointment) (bool, error)
}
