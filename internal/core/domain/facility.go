package domain

import "github.com/google/uuid"

type Facility struct {
	FacilityID uuid.UUID `json:"FacilityId"`
	Name       string    `json:"Name"`
	Address    string    `json:"Address"`
}
