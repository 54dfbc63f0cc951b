package dto

type AppointmentListDTO struct {
	ID               uint   `json:"id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	DurationMin      int    `json:"duration_min"`
	Status           string `json:"status"`
	StatusLabel      string `json:"status_label"`
	ClientName       string `json:"client_name"`
	ServiceName      string `json:"service_name"`
	ProfessionalName string `json:"professional_name"`
	Rating           *int   `json:"rating"`
}
