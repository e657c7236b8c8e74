package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	ServiceName      string    `json:"service_name"`
	Notes            string    `json:"notes"`
}
