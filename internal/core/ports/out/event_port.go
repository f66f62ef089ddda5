package out

import (
	"context"

	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
)

type EventPort interface {
	PublishAppointmentBooked(ctx context.Context, appointment domain.Appointment) error
}
