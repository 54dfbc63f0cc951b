package appointment

import (
	"context"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/schedule"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID   uint
	UserName string

	ClientPhone string
	ClientEmail string

	ServiceID      uint
	ProfessionalID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment é o fluxo de reserva do cliente: valida serviço,
// profissional e especialidade, exige que o horário caiba no expediente
// e não colida com a agenda existente.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	if !pro.CanPerform(service.ID) {
		return nil, httperr.ErrBusiness("specialty_mismatch")
	}

	ap, err := uc.buildAppointment(ctx, in, service, true)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, ap.ProfessionalID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// buildAppointment valida data/hora e monta o registro com a duração
// congelada e os minutos derivados. Com requireWindow o horário precisa
// caber no expediente (fluxo do cliente); a inserção direta do admin
// passa false e só valida conflito.
func (uc *BookAppointment) buildAppointment(
	ctx context.Context,
	in BookAppointmentInput,
	service *models.Service,
	requireWindow bool,
) (*models.Appointment, error) {

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// Comparação lexicográfica funciona para "2006-01-02"
	if in.Date < timezone.Now().Format("2006-01-02") {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	candidate := schedule.Candidate{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Start:          start,
		DurationMin:    service.DurationMin,
	}

	if requireWindow {
		var window schedule.Window
		if day, err := uc.repo.GetWorkDay(ctx, int(date.Weekday())); err == nil {
			window = schedule.WorkingWindow(*day)
		}
		if !window.Fits(candidate.Interval()) {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
	}

	if conflict, err := uc.findConflict(ctx, candidate); err != nil {
		return nil, err
	} else if conflict != nil {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	iv := candidate.Interval()

	return &models.Appointment{
		UserID:         in.UserID,
		UserName:       in.UserName,
		ClientPhone:    in.ClientPhone,
		ClientEmail:    in.ClientEmail,
		ServiceID:      service.ID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           schedule.FormatClock(start),
		StartMinute:    iv.Start,
		EndMinute:      iv.End,
		DurationMin:    service.DurationMin,
		Status:         domain.InitialStatus(),
		Notes:          in.Notes,
	}, nil
}

func (uc *BookAppointment) findConflict(
	ctx context.Context,
	candidate schedule.Candidate,
) (*models.Appointment, error) {

	existing, err := uc.repo.ListAppointmentsForDay(ctx, candidate.ProfessionalID, candidate.Date)
	if err != nil {
		return nil, err
	}

	durations, err := uc.repo.ServiceDurations(ctx)
	if err != nil {
		return nil, err
	}

	resolve := func(serviceID uint) (int, bool) {
		d, ok := durations[serviceID]
		return d, ok
	}

	return schedule.FindConflict(candidate, existing, resolve), nil
}
