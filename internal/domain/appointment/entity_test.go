package appointment

import (
	"testing"
	"time"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)

	ap := models.Appointment{Status: models.StatusConfirmed}
	if err := Cancel(&ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected CancelledAt %v, got %v", now, ap.CancelledAt)
	}

	done := models.Appointment{Status: models.StatusCompleted}
	if err := Cancel(&done, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 9, 7, 18, 0, 0, 0, time.UTC)

	ap := models.Appointment{Status: models.StatusInProgress}
	if err := Complete(&ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != models.StatusCompleted || ap.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", ap)
	}

	cancelled := models.Appointment{Status: models.StatusCancelled}
	if err := Complete(&cancelled, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	now := time.Date(2026, 9, 7, 18, 0, 0, 0, time.UTC)

	// Troca entre não terminais não carimba nada.
	ap := models.Appointment{Status: models.StatusPending}
	if err := SetStatus(&ap, models.StatusConfirmed, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.CancelledAt != nil || ap.CompletedAt != nil {
		t.Fatal("non-terminal transition should not stamp timestamps")
	}

	if err := SetStatus(&ap, models.StatusCompleted, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("expected CompletedAt stamp")
	}

	// Concluído é terminal: nenhuma troca posterior passa.
	if err := SetStatus(&ap, models.StatusPending, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestAttachReview(t *testing.T) {
	ap := models.Appointment{Status: models.StatusCompleted}
	if err := AttachReview(&ap, 5, "Amei o resultado!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Rating == nil || *ap.Rating != 5 || ap.ReviewComment != "Amei o resultado!" {
		t.Fatalf("review not attached: %+v", ap)
	}

	pending := models.Appointment{Status: models.StatusPending}
	if err := AttachReview(&pending, 4, ""); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	done := models.Appointment{Status: models.StatusCompleted}
	for _, rating := range []int{0, 6, -1} {
		if err := AttachReview(&done, rating, ""); !httperr.IsBusiness(err, "invalid_rating") {
			t.Fatalf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}
}
