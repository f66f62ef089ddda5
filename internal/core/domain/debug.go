package domain

import "time"

// StageTiming замеряет длительность одного этапа обработки запроса
// для вывода в лог.
type StageTiming struct {
	Event     string
	StartTime time.Time
	Timing    int64
}

func NewStageTiming(event string) *StageTiming {
	return &StageTiming{Event: event, StartTime: time.Now()}
}

// Elapse фиксирует время этапа в миллисекундах и возвращает его.
func (d *StageTiming) Elapse() int64 {
	d.Timing = time.Since(d.StartTime).Milliseconds()
	return d.Timing
}
