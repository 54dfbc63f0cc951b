package appointment

import (
	"testing"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(models.StatusCompleted) || !IsTerminal(models.StatusCancelled) {
		t.Fatal("completed and cancelled are terminal")
	}
	for _, s := range []string{models.StatusPending, models.StatusConfirmed, models.StatusInProgress} {
		if IsTerminal(s) {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	// Entre estados não terminais a troca é livre, inclusive "voltar".
	free := []struct{ from, to string }{
		{models.StatusPending, models.StatusConfirmed},
		{models.StatusConfirmed, models.StatusInProgress},
		{models.StatusInProgress, models.StatusCompleted},
		{models.StatusConfirmed, models.StatusPending},
		{models.StatusPending, models.StatusCancelled},
	}
	for _, c := range free {
		if err := CanTransition(c.from, c.to); err != nil {
			t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
		}
	}

	// Estados terminais não saem do lugar.
	terminal := []struct{ from, to string }{
		{models.StatusCompleted, models.StatusConfirmed},
		{models.StatusCompleted, models.StatusCancelled},
		{models.StatusCancelled, models.StatusPending},
		{models.StatusCancelled, models.StatusCompleted},
	}
	for _, c := range terminal {
		err := CanTransition(c.from, c.to)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("%s -> %s: expected invalid_state, got %v", c.from, c.to, err)
		}
	}

	if err := CanTransition(models.StatusPending, "bogus"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != models.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}
