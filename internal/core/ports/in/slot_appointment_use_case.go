package in

import (
	"context"
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

type SlotAppointmentUseCase interface {
	// Свободные слоты недели, в которую попадает желаемая дата
	GetWeeklyFreeSlots(ctx context.Context, desiredDate time.Time) (*domain.ScheduleResponse, error)

	// Запись пациента на слот. Возвращает ответ сервиса записи как есть
	TakeAppointmentByUser(ctx context.Context, request *domain.AppointmentRequest) (bool, error)
}

type CacheInvalidationUseCase interface {
	// Сброс кэша расписания одной недели (ключ yyyyMMdd понедельника)
	InvalidateWeekCache(ctx context.Context, weekKey string) error

	InvalidateAllWeeksCache(ctx context.Context) error
}
