package availability

import (
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/json_types"
)

// Ответ GetWeeklyAvailability. Даты занятых слотов приходят без таймзоны.

type slotResponse struct {
	Start json_types.DateTime `json:"Start"`
	End   json_types.DateTime `json:"End"`
}

type dayScheduleResponse struct {
	WorkPeriod domain.WorkPeriod `json:"WorkPeriod"`
	BusySlots  []slotResponse    `json:"BusySlots"`
}

type scheduleResponse struct {
	Facility            domain.Facility      `json:"Facility"`
	SlotDurationMinutes int                  `json:"SlotDurationMinutes"`
	Monday              *dayScheduleResponse `json:"Monday"`
	Tuesday             *dayScheduleResponse `json:"Tuesday"`
	Wednesday           *dayScheduleResponse `json:"Wednesday"`
	Thursday            *dayScheduleResponse `json:"Thursday"`
	Friday              *dayScheduleResponse `json:"Friday"`
}

func (r *scheduleResponse) toDomain() *domain.Schedule {
	return &domain.Schedule{
		Facility:            r.Facility,
		SlotDurationMinutes: r.SlotDurationMinutes,
		Monday:              r.Monday.toDomain(),
		Tuesday:             r.Tuesday.toDomain(),
		Wednesday:           r.Wednesday.toDomain(),
		Thursday:            r.Thursday.toDomain(),
		Friday:              r.Friday.toDomain(),
	}
}

func (r *dayScheduleResponse) toDomain() *domain.DaySchedule {
	if r == nil {
		return nil
	}

	busySlots := make([]domain.Slot, 0, len(r.BusySlots))
	for _, slot := range r.BusySlots {
		busySlots = append(busySlots, domain.Slot{
			Start: slot.Start.Date,
			End:   slot.End.Date,
		})
	}

	return &domain.DaySchedule{
		WorkPeriod: r.WorkPeriod,
		BusySlots:  busySlots,
	}
}
