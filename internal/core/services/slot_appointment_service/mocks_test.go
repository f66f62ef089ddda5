package slot_appointment_service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

type mockAvailabilityPort struct {
	mock.Mock
}

func (m *mockAvailabilityPort) GetWeeklyAvailability(ctx context.Context, weekKey string) (*domain.Schedule, error) {
	args := m.Called(ctx, weekKey)
	schedule, _ := args.Get(0).(*domain.Schedule)
	return schedule, args.Error(1)
}

func (m *mockAvailabilityPort) TakeSlot(ctx context.Context, appointment domain.Appointment) (bool, error) {
	args := m.Called(ctx, appointment)
	return args.Bool(0), args.Error(1)
}

type mockCachePort struct {
	mock.Mock
}

func (m *mockCachePort) GetSchedule(ctx context.Context, weekKey string) (*domain.Schedule, bool) {
	args := m.Called(ctx, weekKey)
	schedule, _ := args.Get(0).(*domain.Schedule)
	return schedule, args.Bool(1)
}

func (m *mockCachePort) StoreSchedule(ctx context.Context, weekKey string, schedule *domain.Schedule) {
	m.Called(ctx, weekKey, schedule)
}

func (m *mockCachePort) InvalidateSchedule(ctx context.Context, weekKey string) {
	m.Called(ctx, weekKey)
}

func (m *mockCachePort) InvalidateAllSchedules(ctx context.Context) {
	m.Called(ctx)
}

type mockEventPort struct {
	mock.Mock
}

func (m *mockEventPort) PublishAppointmentBooked(ctx context.Context, appointment domain.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
