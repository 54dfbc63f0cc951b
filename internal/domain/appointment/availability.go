package appointment

// AvailabilityInput identifica a consulta de horários livres.
type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           string // "2006-01-02"
}

// Availability é a resposta: Closed distingue salão fechado de dia lotado.
type Availability struct {
	Date   string   `json:"date"`
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}
