package appointment

import (
	"time"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ap.Status); err != nil {
		return err
	}

	ap.Status = models.StatusCancelled
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = models.StatusCompleted
	ap.CompletedAt = &now
	return nil
}

// SetStatus aplica uma troca arbitrária vinda do painel admin,
// registrando os carimbos dos estados terminais.
func SetStatus(ap *models.Appointment, next string, now time.Time) error {
	if err := CanTransition(ap.Status, next); err != nil {
		return err
	}

	ap.Status = next
	switch next {
	case models.StatusCancelled:
		ap.CancelledAt = &now
	case models.StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

// AttachReview anexa avaliação (nota 1–5 + comentário) a um
// agendamento concluído.
func AttachReview(ap *models.Appointment, rating int, comment string) error {
	if ap.Status != models.StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	ap.Rating = &rating
	ap.ReviewComment = comment
	return nil
}
