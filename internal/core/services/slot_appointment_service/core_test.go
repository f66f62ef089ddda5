package slot_appointment_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/out/logger"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

// Среда, 17.07.2024 09:00
var testNow = time.Date(2024, 7, 17, 9, 0, 0, 0, time.UTC)

type serviceFixture struct {
	availability *mockAvailabilityPort
	cache        *mockCachePort
	events       *mockEventPort
	service      *SlotAppointmentService
}

func newServiceFixture(t *testing.T, withCache bool, withEvents bool) *serviceFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Appointment.MaxMonthsForAnAppointment = 8
	cfg.Appointment.FutureSlotsOnly = true

	f := &serviceFixture{
		availability: &mockAvailabilityPort{},
		cache:        &mockCachePort{},
		events:       &mockEventPort{},
	}

	var service *SlotAppointmentService
	switch {
	case withCache && withEvents:
		service = NewSlotAppointmentService(cfg, f.availability, f.cache, f.events, fixedClock{now: testNow}, logger.NewNopLogger())
	case withCache:
		service = NewSlotAppointmentService(cfg, f.availability, f.cache, nil, fixedClock{now: testNow}, logger.NewNopLogger())
	case withEvents:
		service = NewSlotAppointmentService(cfg, f.availability, nil, f.events, fixedClock{now: testNow}, logger.NewNopLogger())
	default:
		service = NewSlotAppointmentService(cfg, f.availability, nil, nil, fixedClock{now: testNow}, logger.NewNopLogger())
	}
	f.service = service

	t.Cleanup(func() {
		f.availability.AssertExpectations(t)
		f.cache.AssertExpectations(t)
		f.events.AssertExpectations(t)
	})

	return f
}

func TestGetWeeklyFreeSlots_DateRange(t *testing.T) {
	cases := []struct {
		name    string
		desired time.Time
		valid   bool
	}{
		{"now is accepted", testNow, true},
		{"horizon end is accepted", time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), true},
		{"one second in the past", testNow.Add(-time.Second), false},
		{"one day in the past", testNow.AddDate(0, 0, -1), false},
		{"one second past horizon", time.Date(2025, 3, 17, 9, 0, 1, 0, time.UTC), false},
		{"nine months ahead", testNow.AddDate(0, 9, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, false, false)
			if tc.valid {
				f.availability.On("GetWeeklyAvailability", mock.Anything, mock.AnythingOfType("string")).
					Return(newTestSchedule(), nil).Once()
			}

			response, err := f.service.GetWeeklyFreeSlots(context.Background(), tc.desired)

			if tc.valid {
				require.NoError(t, err)
				assert.NotNil(t, response)
				return
			}
			assert.ErrorIs(t, err, domain.ErrDateOutOfRange)
			assert.Nil(t, response)
			f.availability.AssertNotCalled(t, "GetWeeklyAvailability", mock.Anything, mock.Anything)
		})
	}
}

func TestGetWeeklyFreeSlots_RequestsMondayWeekKey(t *testing.T) {
	f := newServiceFixture(t, false, false)
	sunday := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)

	f.availability.On("GetWeeklyAvailability", mock.Anything, "20240715").Return(newTestSchedule(), nil).Once()

	response, err := f.service.GetWeeklyFreeSlots(context.Background(), sunday)
	require.NoError(t, err)

	// Понедельник и вторник уже в прошлом относительно testNow
	assert.Empty(t, response.FreeSlots)
}

func TestGetWeeklyFreeSlots_ReturnsFreeSlots(t *testing.T) {
	f := newServiceFixture(t, false, false)
	nextMonday := time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC)
	schedule := newTestSchedule()
	schedule.Monday.BusySlots = []domain.Slot{
		{Start: clockAt(nextMonday, 11, 0), End: clockAt(nextMonday, 11, 10)},
	}

	f.availability.On("GetWeeklyAvailability", mock.Anything, "20240722").Return(schedule, nil).Once()

	response, err := f.service.GetWeeklyFreeSlots(context.Background(), nextMonday.Add(14*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, schedule.Facility.FacilityID, response.FacilityID)
	require.Len(t, response.FreeSlots, 41)
	for _, slot := range response.FreeSlots {
		assert.False(t, slot.Start.Equal(clockAt(nextMonday, 11, 0)))
	}
}

func TestGetWeeklyFreeSlots_NotFound(t *testing.T) {
	f := newServiceFixture(t, false, false)
	f.availability.On("GetWeeklyAvailability", mock.Anything, "20240722").Return(nil, nil).Once()

	response, err := f.service.GetWeeklyFreeSlots(context.Background(), testNow.AddDate(0, 0, 7))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, response)
}

func TestGetWeeklyFreeSlots_CollaboratorErrorIsUnchanged(t *testing.T) {
	f := newServiceFixture(t, false, false)
	remoteErr := errors.New("Remote service error")
	f.availability.On("GetWeeklyAvailability", mock.Anything, mock.Anything).Return(nil, remoteErr).Once()

	_, err := f.service.GetWeeklyFreeSlots(context.Background(), testNow.AddDate(0, 0, 7))

	assert.Same(t, remoteErr, err)
}

func TestGetWeeklyFreeSlots_UsesCache(t *testing.T) {
	f := newServiceFixture(t, true, false)
	schedule := newTestSchedule()

	f.cache.On("GetSchedule", mock.Anything, "20240722").Return(nil, false).Once()
	f.availability.On("GetWeeklyAvailability", mock.Anything, "20240722").Return(schedule, nil).Once()
	f.cache.On("StoreSchedule", mock.Anything, "20240722", schedule).Once()

	_, err := f.service.GetWeeklyFreeSlots(context.Background(), testNow.AddDate(0, 0, 7))
	require.NoError(t, err)

	f.cache.On("GetSchedule", mock.Anything, "20240722").Return(schedule, true).Once()

	_, err = f.service.GetWeeklyFreeSlots(context.Background(), testNow.AddDate(0, 0, 7))
	require.NoError(t, err)
}

func TestGetWeeklyFreeSlots_MissingScheduleIsNotCached(t *testing.T) {
	f := newServiceFixture(t, true, false)

	f.cache.On("GetSchedule", mock.Anything, "20240722").Return(nil, false).Once()
	f.availability.On("GetWeeklyAvailability", mock.Anything, "20240722").Return(nil, nil).Once()

	_, err := f.service.GetWeeklyFreeSlots(context.Background(), testNow.AddDate(0, 0, 7))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.cache.AssertNotCalled(t, "StoreSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestTakeAppointmentByUser_NilRequest(t *testing.T) {
	f := newServiceFixture(t, false, false)

	booked, err := f.service.TakeAppointmentByUser(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, booked)
	f.availability.AssertNotCalled(t, "TakeSlot", mock.Anything, mock.Anything)
}

func TestTakeAppointmentByUser_SubmitsTranslatedAppointment(t *testing.T) {
	f := newServiceFixture(t, false, false)
	request := newTestAppointmentRequest()
	expected := TranslateAppointmentRequest(*request)

	f.availability.On("TakeSlot", mock.Anything, expected).Return(true, nil).Once()

	booked, err := f.service.TakeAppointmentByUser(context.Background(), request)

	require.NoError(t, err)
	assert.True(t, booked)
}

func TestTakeAppointmentByUser_CollaboratorErrorIsUnchanged(t *testing.T) {
	f := newServiceFixture(t, true, true)
	remoteErr := errors.New("Remote service error")

	f.availability.On("TakeSlot", mock.Anything, mock.Anything).Return(false, remoteErr).Once()

	booked, err := f.service.TakeAppointmentByUser(context.Background(), newTestAppointmentRequest())

	assert.False(t, booked)
	require.Error(t, err)
	assert.Equal(t, "Remote service error", err.Error())
	f.cache.AssertNotCalled(t, "InvalidateSchedule", mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
}

func TestTakeAppointmentByUser_RejectedIsPassedThrough(t *testing.T) {
	f := newServiceFixture(t, true, true)

	f.availability.On("TakeSlot", mock.Anything, mock.Anything).Return(false, nil).Once()

	booked, err := f.service.TakeAppointmentByUser(context.Background(), newTestAppointmentRequest())

	require.NoError(t, err)
	assert.False(t, booked)
	f.cache.AssertNotCalled(t, "InvalidateSchedule", mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
}

func TestTakeAppointmentByUser_InvalidatesWeekAndPublishes(t *testing.T) {
	f := newServiceFixture(t, true, true)
	request := newTestAppointmentRequest()
	expected := TranslateAppointmentRequest(*request)

	f.availability.On("TakeSlot", mock.Anything, expected).Return(true, nil).Once()
	f.cache.On("InvalidateSchedule", mock.Anything, "20240715").Once()
	f.events.On("PublishAppointmentBooked", mock.Anything, expected).Return(errors.New("channel closed")).Once()

	booked, err := f.service.TakeAppointmentByUser(context.Background(), request)

	// Ошибка публикации не ломает запись
	require.NoError(t, err)
	assert.True(t, booked)
}

func TestInvalidateCache_WithoutCacheIsNoop(t *testing.T) {
	f := newServiceFixture(t, false, false)

	assert.NoError(t, f.service.InvalidateWeekCache(context.Background(), "20240715"))
	assert.NoError(t, f.service.InvalidateAllWeeksCache(context.Background()))
}

func TestInvalidateCache(t *testing.T) {
	f := newServiceFixture(t, true, false)

	f.cache.On("InvalidateSchedule", mock.Anything, "20240715").Once()
	f.cache.On("InvalidateAllSchedules", mock.Anything).Once()

	assert.NoError(t, f.service.InvalidateWeekCache(context.Background(), "20240715"))
	assert.NoError(t, f.service.InvalidateAllWeeksCache(context.Background()))
}
