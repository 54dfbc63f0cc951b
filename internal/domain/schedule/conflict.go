package schedule

import "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"

// Candidate é um agendamento ainda não gravado, sendo validado
// contra a agenda existente.
type Candidate struct {
	ProfessionalID uint
	Date           string
	Start          int
	DurationMin    int
}

func (c Candidate) Interval() Interval {
	return Interval{Start: c.Start, End: c.Start + c.DurationMin}
}

// FindConflict devolve o primeiro agendamento existente que colide com o
// candidato, ou nil. Considera só a mesma profissional, mesma data e
// status não cancelado; usa a mesma regra semiaberta da disponibilidade.
//
// Conflito não é erro: o chamador transforma o retorno em mensagem
// nomeando cliente e horário.
func FindConflict(c Candidate, existing []models.Appointment, resolve DurationResolver) *models.Appointment {
	target := c.Interval()

	for i := range existing {
		ap := &existing[i]

		if ap.ProfessionalID != c.ProfessionalID ||
			ap.Date != c.Date ||
			ap.Status == models.StatusCancelled {
			continue
		}

		start, err := ParseClock(ap.Time)
		if err != nil {
			continue
		}

		busy := Interval{Start: start, End: start + EffectiveDuration(*ap, resolve)}
		if target.Overlaps(busy) {
			return ap
		}
	}

	return nil
}
