package out

import (
	"context"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

type CachePort interface {
	GetSchedule(ctx context.Context, weekKey string) (*domain.Schedule, bool)
	StoreSchedule(ctx context.Context, weekKey string, schedule *domain.Schedule)
	InvalidateSchedule(ctx context.Context, weekKey string)
	InvalidateAllSchedules(ctx context.Context)
}
