package schedule

import (
	"reflect"
	"testing"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

func TestComputeSlots_ClosedDay(t *testing.T) {
	slots, closed := ComputeSlots(Window{}, 60, nil, StepMinutes)
	if !closed {
		t.Fatal("expected closed=true for closed window")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestComputeSlots_StepGrid(t *testing.T) {
	// 09:00–12:00, serviço de 60 min, agenda vazia.
	// 11:00 entra (termina exatamente no fechamento); 11:30 não.
	w := Window{Open: true, Start: 540, End: 720}

	slots, closed := ComputeSlots(w, 60, nil, StepMinutes)
	if closed {
		t.Fatal("expected closed=false")
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if got := FormatSlots(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComputeSlots_BackToBackAllowed(t *testing.T) {
	// Agendamento 10:00–11:00: 09:00 (termina às 10:00) e 11:00
	// (começa no fim) continuam livres.
	w := Window{Open: true, Start: 540, End: 720}
	busy := []Interval{{Start: 600, End: 660}}

	slots, _ := ComputeSlots(w, 60, busy, StepMinutes)

	want := []string{"09:00", "11:00"}
	if got := FormatSlots(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComputeSlots_LunchCarveOut(t *testing.T) {
	// 09:00–14:00 com almoço 12:00–13:00 já incluso nos ocupados.
	w := Window{Open: true, Start: 540, End: 840}
	busy := []Interval{{Start: 720, End: 780}}

	slots, _ := ComputeSlots(w, 60, busy, StepMinutes)

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:00"}
	if got := FormatSlots(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComputeSlots_FullyBookedIsNotClosed(t *testing.T) {
	w := Window{Open: true, Start: 540, End: 720}
	busy := []Interval{{Start: 540, End: 720}}

	slots, closed := ComputeSlots(w, 60, busy, StepMinutes)
	if closed {
		t.Fatal("fully booked day must not report closed")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", FormatSlots(slots))
	}
}

func TestComputeSlots_LongServiceShrinksGrid(t *testing.T) {
	// Serviço de 90 min em 09:00–12:00: último início viável é 10:30.
	w := Window{Open: true, Start: 540, End: 720}

	slots, _ := ComputeSlots(w, 90, nil, StepMinutes)

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if got := FormatSlots(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComputeSlots_Defaults(t *testing.T) {
	w := Window{Open: true, Start: 540, End: 660}

	// Duração e passo não positivos caem nos padrões (60 / 30).
	slots, _ := ComputeSlots(w, 0, nil, 0)

	want := []string{"09:00", "09:30", "10:00"}
	if got := FormatSlots(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEffectiveDuration(t *testing.T) {
	resolve := func(serviceID uint) (int, bool) {
		if serviceID == 7 {
			return 45, true
		}
		return 0, false
	}

	// Snapshot gravado vence a duração atual do serviço.
	ap := models.Appointment{ServiceID: 7, DurationMin: 90}
	if got := EffectiveDuration(ap, resolve); got != 90 {
		t.Fatalf("expected snapshot 90, got %d", got)
	}

	// Sem snapshot, vale a duração atual.
	ap = models.Appointment{ServiceID: 7}
	if got := EffectiveDuration(ap, resolve); got != 45 {
		t.Fatalf("expected resolved 45, got %d", got)
	}

	// Serviço apagado: fallback de 60.
	ap = models.Appointment{ServiceID: 99}
	if got := EffectiveDuration(ap, resolve); got != DefaultDurationMin {
		t.Fatalf("expected fallback %d, got %d", DefaultDurationMin, got)
	}

	if got := EffectiveDuration(ap, nil); got != DefaultDurationMin {
		t.Fatalf("nil resolver: expected fallback %d, got %d", DefaultDurationMin, got)
	}
}

func TestBusyIntervals(t *testing.T) {
	w := Window{
		Open:  true,
		Start: 540,
		End:   1140,
		Lunch: &Interval{Start: 720, End: 780},
	}

	appointments := []models.Appointment{
		{Time: "10:00", DurationMin: 60, Status: models.StatusConfirmed},
		{Time: "15:00", DurationMin: 30, Status: models.StatusCancelled},
		{Time: "lixo", DurationMin: 30, Status: models.StatusPending},
		{Time: "16:00", DurationMin: 45, Status: models.StatusPending},
	}

	busy := BusyIntervals(w, appointments, nil)

	// 10:00–11:00, 16:00–16:45 e o almoço; cancelado e horário
	// malformado ficam de fora.
	want := []Interval{
		{Start: 600, End: 660},
		{Start: 960, End: 1005},
		{Start: 720, End: 780},
	}
	if !reflect.DeepEqual(busy, want) {
		t.Fatalf("got %v, want %v", busy, want)
	}
}

func TestBusyIntervals_NoLunch(t *testing.T) {
	w := Window{Open: true, Start: 540, End: 1080}

	busy := BusyIntervals(w, nil, nil)
	if len(busy) != 0 {
		t.Fatalf("expected empty busy list, got %v", busy)
	}
}
