package appointment

import (
	"context"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/timezone"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	next string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	previous := ap.Status
	now := timezone.Now()

	if err := appointment.SetStatus(ap, next, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Cancelamento libera a grade do dia
	if next == models.StatusCancelled {
		uc.cache.InvalidateDay(ctx, ap.ProfessionalID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": previous, "to": next},
	})

	return ap, nil
}
