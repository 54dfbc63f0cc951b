package schedule

import "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"

// Window é a janela de expediente de um dia já convertida em minutos.
type Window struct {
	Open  bool
	Start int
	End   int
	Lunch *Interval
}

// WorkingWindow transforma a configuração de um dia da semana na janela
// de expediente. Com Open=false os demais campos não têm significado.
// Almoço malformado (início >= fim) é ignorado e não bloqueia horário.
func WorkingWindow(day models.WorkDay) Window {
	if !day.Open {
		return Window{}
	}

	start, err := ParseClock(day.StartTime)
	if err != nil {
		return Window{}
	}
	end, err := ParseClock(day.EndTime)
	if err != nil || start >= end {
		return Window{}
	}

	w := Window{Open: true, Start: start, End: end}

	if day.HasLunch {
		ls := ClockOrZero(day.LunchStart)
		le := ClockOrZero(day.LunchEnd)
		if ls < le {
			w.Lunch = &Interval{Start: ls, End: le}
		}
	}

	return w
}

// Fits informa se o intervalo cabe inteiro no expediente sem invadir
// o almoço. Usado na validação de inserção direta pela administração.
func (w Window) Fits(i Interval) bool {
	if !w.Open {
		return false
	}
	if i.Start < w.Start || i.End > w.End {
		return false
	}
	if w.Lunch != nil && i.Overlaps(*w.Lunch) {
		return false
	}
	return true
}

// DefaultWeek é a grade padrão do salão: seg–sex 09:00–19:00 com almoço
// 12:00–13:00, sábado 09:00–18:00 sem almoço, domingo fechado.
func DefaultWeek() []models.WorkDay {
	week := make([]models.WorkDay, 7)
	for wd := 0; wd < 7; wd++ {
		day := models.WorkDay{
			Weekday:    wd,
			Open:       true,
			StartTime:  "09:00",
			EndTime:    "19:00",
			HasLunch:   true,
			LunchStart: "12:00",
			LunchEnd:   "13:00",
		}
		switch wd {
		case 0:
			day.Open = false
		case 6:
			day.EndTime = "18:00"
			day.HasLunch = false
		}
		week[wd] = day
	}
	return week
}
