package schedule

import (
	"testing"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

func existingAppointment(id, proID uint, date, clock string, duration int, status string) models.Appointment {
	return models.Appointment{
		ID:             id,
		ProfessionalID: proID,
		Date:           date,
		Time:           clock,
		DurationMin:    duration,
		Status:         status,
	}
}

func TestFindConflict_Overlap(t *testing.T) {
	// Progressiva 10:00–11:30 já marcada; corte às 10:30 colide.
	existing := []models.Appointment{
		existingAppointment(1, 5, "2026-09-07", "10:00", 90, models.StatusConfirmed),
	}

	c := Candidate{ProfessionalID: 5, Date: "2026-09-07", Start: 630, DurationMin: 60}

	got := FindConflict(c, existing, nil)
	if got == nil {
		t.Fatal("expected conflict, got nil")
	}
	if got.ID != 1 {
		t.Fatalf("expected appointment 1, got %d", got.ID)
	}
}

func TestFindConflict_BackToBack(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment(1, 5, "2026-09-07", "10:00", 90, models.StatusConfirmed),
	}

	// Começa exatamente quando a anterior termina (11:30).
	c := Candidate{ProfessionalID: 5, Date: "2026-09-07", Start: 690, DurationMin: 60}

	if got := FindConflict(c, existing, nil); got != nil {
		t.Fatalf("back-to-back should not conflict, got appointment %d", got.ID)
	}
}

func TestFindConflict_ScopeFilters(t *testing.T) {
	c := Candidate{ProfessionalID: 5, Date: "2026-09-07", Start: 600, DurationMin: 60}

	cases := []struct {
		name string
		ap   models.Appointment
	}{
		{"other professional", existingAppointment(1, 6, "2026-09-07", "10:00", 60, models.StatusConfirmed)},
		{"other date", existingAppointment(2, 5, "2026-09-08", "10:00", 60, models.StatusConfirmed)},
		{"cancelled", existingAppointment(3, 5, "2026-09-07", "10:00", 60, models.StatusCancelled)},
		{"unparseable time", existingAppointment(4, 5, "2026-09-07", "lixo", 60, models.StatusConfirmed)},
	}

	for _, tc := range cases {
		if got := FindConflict(c, []models.Appointment{tc.ap}, nil); got != nil {
			t.Errorf("%s: expected no conflict, got appointment %d", tc.name, got.ID)
		}
	}
}

func TestFindConflict_ResolverFallback(t *testing.T) {
	// Agendamento antigo sem snapshot: a duração vem do resolver.
	existing := []models.Appointment{
		existingAppointment(1, 5, "2026-09-07", "10:00", 0, models.StatusConfirmed),
	}
	existing[0].ServiceID = 3

	resolve := func(serviceID uint) (int, bool) {
		if serviceID == 3 {
			return 30, true
		}
		return 0, false
	}

	// 10:30 com duração resolvida de 30 min: sem conflito.
	c := Candidate{ProfessionalID: 5, Date: "2026-09-07", Start: 630, DurationMin: 60}
	if got := FindConflict(c, existing, resolve); got != nil {
		t.Fatalf("expected no conflict with resolved 30min, got appointment %d", got.ID)
	}

	// Sem resolver cai no fallback de 60 min e 10:30 colide.
	if got := FindConflict(c, existing, nil); got == nil {
		t.Fatal("expected conflict with fallback duration")
	}
}

func TestCandidateInterval(t *testing.T) {
	c := Candidate{Start: 600, DurationMin: 45}
	if got := c.Interval(); got.Start != 600 || got.End != 645 {
		t.Fatalf("unexpected interval %+v", got)
	}
}
