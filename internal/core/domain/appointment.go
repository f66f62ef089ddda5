package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentDateTimeLayout - формат дат, который ожидает внешний сервис записи.
const AppointmentDateTimeLayout = "2006-01-02 15:04:05"

type Patient struct {
	Name       string `json:"Name"`
	SecondName string `json:"SecondName"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
}

type AppointmentRequest struct {
	FacilityID uuid.UUID
	Start      time.Time
	End        time.Time
	Comments   string
	Patient    Patient
}

// Appointment - запись в том виде, в котором ее принимает сервис записи.
type Appointment struct {
	FacilityID uuid.UUID `json:"FacilityId"`
	Start      string    `json:"Start"`
	End        string    `json:"End"`
	Comments   string    `json:"Comments"`
	Patient    Patient   `json:"Patient"`
}
