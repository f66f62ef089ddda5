package domain

import (
	"fmt"
	"time"
)

// WorkPeriod - рабочее окно дня в целых часах.
// Ожидается StartHour <= LunchStartHour <= LunchEndHour <= EndHour,
// вечерние слоты появляются только при LunchEndHour < EndHour.
type WorkPeriod struct {
	StartHour      int `json:"StartHour"`
	LunchStartHour int `json:"LunchStartHour"`
	LunchEndHour   int `json:"LunchEndHour"`
	EndHour        int `json:"EndHour"`
}

func (w WorkPeriod) Start() time.Duration      { return time.Duration(w.StartHour) * time.Hour }
func (w WorkPeriod) LunchStart() time.Duration { return time.Duration(w.LunchStartHour) * time.Hour }
func (w WorkPeriod) LunchEnd() time.Duration   { return time.Duration(w.LunchEndHour) * time.Hour }
func (w WorkPeriod) End() time.Duration        { return time.Duration(w.EndHour) * time.Hour }

// Validate проверяет порядок часов. Расписание с нарушениями все равно
// обрабатывается, просто дает меньше слотов.
func (w WorkPeriod) Validate() error {
	for _, h := range []int{w.StartHour, w.LunchStartHour, w.LunchEndHour, w.EndHour} {
		if h < 0 || h > 24 {
			return fmt.Errorf("work period hour %d is out of 0..24", h)
		}
	}
	if w.StartHour > w.LunchStartHour || w.LunchStartHour > w.LunchEndHour || w.LunchEndHour > w.EndHour {
		return fmt.Errorf("work period %02d-%02d/%02d-%02d is not ordered",
			w.StartHour, w.LunchStartHour, w.LunchEndHour, w.EndHour)
	}
	if w.LunchEndHour == w.EndHour {
		return fmt.Errorf("work period lunch ends at closing time %02d, no evening slots", w.EndHour)
	}
	return nil
}

type DaySchedule struct {
	WorkPeriod WorkPeriod
	BusySlots  []Slot
}

type Schedule struct {
	Facility            Facility
	SlotDurationMinutes int
	Monday              *DaySchedule
	Tuesday             *DaySchedule
	Wednesday           *DaySchedule
	Thursday            *DaySchedule
	Friday              *DaySchedule
}

func (s *Schedule) SlotDuration() time.Duration {
	return time.Duration(s.SlotDurationMinutes) * time.Minute
}

// Days возвращает расписания с понедельника по пятницу, отсутствующие дни - nil.
func (s *Schedule) Days() [5]*DaySchedule {
	return [5]*DaySchedule{s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday}
}
