package slot_appointment_service

import "github.com/suchimauz/slot-appointment-service/internal/core/domain"

// TranslateAppointmentRequest переводит запрос в формат сервиса записи:
// даты строкой "yyyy-MM-dd HH:mm:ss" без долей секунды и таймзоны.
func TranslateAppointmentRequest(request domain.AppointmentRequest) domain.Appointment {
	return domain.Appointment{
		FacilityID: request.FacilityID,
		Start:      request.Start.Format(domain.AppointmentDateTimeLayout),
		End:        request.End.Format(domain.AppointmentDateTimeLayout),
		Comments:   request.Comments,
		Patient:    request.Patient,
	}
}
