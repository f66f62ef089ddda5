package clock

import (
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/config"
)

// SystemClock - часы хоста в таймзоне приложения.
type SystemClock struct {
	location *time.Location
}

func NewSystemClock() *SystemClock {
	return &SystemClock{location: config.TimeZone}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}
