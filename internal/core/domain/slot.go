package domain

import (
	"time"

	"github.com/google/uuid"
)

// Slot описывает интервал приема. Используется и для занятых слотов из
// расписания, и для вычисленных свободных.
type Slot struct {
	Start time.Time
	End   time.Time
}

// ScheduleResponse - свободные слоты недели в порядке день недели, затем время.
type ScheduleResponse struct {
	FacilityID uuid.UUID
	FreeSlots  []Slot
}
