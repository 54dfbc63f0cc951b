package schedule

import "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"

const (
	// StepMinutes é o passo fixo da grade de horários.
	StepMinutes = 30

	// DefaultDurationMin cobre agendamentos cujo serviço foi apagado:
	// melhor assumir uma hora do que derrubar a agenda inteira.
	DefaultDurationMin = 60
)

// DurationResolver devolve a duração atual de um serviço, quando ainda existe.
type DurationResolver func(serviceID uint) (int, bool)

// EffectiveDuration resolve a duração de um agendamento existente:
// snapshot gravado na criação > duração atual do serviço > fallback de 60.
func EffectiveDuration(ap models.Appointment, resolve DurationResolver) int {
	if ap.DurationMin > 0 {
		return ap.DurationMin
	}
	if resolve != nil {
		if d, ok := resolve(ap.ServiceID); ok && d > 0 {
			return d
		}
	}
	return DefaultDurationMin
}

// BusyIntervals monta os intervalos ocupados de uma profissional num dia:
// um por agendamento não cancelado, mais o almoço quando houver.
func BusyIntervals(w Window, appointments []models.Appointment, resolve DurationResolver) []Interval {
	var busy []Interval

	for _, ap := range appointments {
		if ap.Status == models.StatusCancelled {
			continue
		}
		start, err := ParseClock(ap.Time)
		if err != nil {
			continue
		}
		busy = append(busy, Interval{
			Start: start,
			End:   start + EffectiveDuration(ap, resolve),
		})
	}

	if w.Lunch != nil {
		busy = append(busy, *w.Lunch)
	}

	return busy
}

// ComputeSlots enumera os horários livres de uma janela em passos fixos.
// closed=true distingue "salão fechado" de "dia lotado".
//
// Um candidato entra se couber inteiro no expediente (fim <= fechamento)
// e não colidir com nenhum intervalo ocupado pela regra semiaberta —
// horários colados em agendamentos existentes são válidos.
func ComputeSlots(w Window, durationMin int, busy []Interval, stepMin int) (slots []int, closed bool) {
	if !w.Open {
		return nil, true
	}
	if durationMin <= 0 {
		durationMin = DefaultDurationMin
	}
	if stepMin <= 0 {
		stepMin = StepMinutes
	}

	for start := w.Start; start < w.End; start += stepMin {
		candidate := Interval{Start: start, End: start + durationMin}

		if candidate.End > w.End {
			continue
		}

		free := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, start)
		}
	}

	return slots, false
}

// FormatSlots converte os minutos devolvidos por ComputeSlots em "HH:mm".
func FormatSlots(slots []int) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, FormatClock(s))
	}
	return out
}
