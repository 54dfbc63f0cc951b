package appointment

import (
	"context"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

type AttachReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAttachReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AttachReview {
	return &AttachReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AttachReview) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	rating int,
	comment string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.UserID != userID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := appointment.AttachReview(ap, rating, comment); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "review_attached",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]int{"rating": rating},
	})

	return ap, nil
}
