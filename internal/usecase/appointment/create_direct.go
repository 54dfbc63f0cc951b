package appointment

import (
	"context"
	"fmt"

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

type CreateDirectAppointmentInput struct {
	AdminID uint

	ClientName  string
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

// CreateDirectAppointment é a inserção manual pela administração.
// Diferente do fluxo do cliente, não exige especialidade nem expediente
// (a recepção pode encaixar fora da grade); só recusa sobreposição,
// devolvendo o agendamento conflitante para a mensagem nomeada.
type CreateDirectAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateDirectAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *CreateDirectAppointment {
	return &CreateDirectAppointment{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute devolve (criado, conflito, erro): exatamente um dos três.
func (uc *CreateDirectAppointment) Execute(
	ctx context.Context,
	in CreateDirectAppointmentInput,
) (*models.Appointment, *models.Appointment, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("service_not_found")
	}

	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("professional_not_found")
	}

	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_time")
	}

	candidate := schedule.Candidate{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Start:          start,
		DurationMin:    service.DurationMin,
	}

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, nil, err
	}

	durations, err := uc.repo.ServiceDurations(ctx)
	if err != nil {
		return nil, nil, err
	}
	resolve := func(serviceID uint) (int, bool) {
		d, ok := durations[serviceID]
		return d, ok
	}

	if conflict := schedule.FindConflict(candidate, existing, resolve); conflict != nil {
		return nil, conflict, nil
	}

	iv := candidate.Interval()

	ap := &models.Appointment{
		UserName:       in.ClientName,
		ClientPhone:    in.ClientPhone,
		ClientEmail:    in.ClientEmail,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		Date:           in.Date,
		Time:           schedule.FormatClock(start),
		StartMinute:    iv.Start,
		EndMinute:      iv.End,
		DurationMin:    service.DurationMin,
		Status:         domain.InitialStatus(),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.cache.InvalidateDay(ctx, ap.ProfessionalID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "appointment_created_direct",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil, nil
}

// ConflictMessage monta o aviso exibido na tela da administração.
func ConflictMessage(pro *models.Professional, conflict *models.Appointment) string {
	return fmt.Sprintf(
		"Conflito de horário detectado! O profissional %s já possui um agendamento em %s com %s.",
		pro.Name,
		conflict.Time,
		conflict.UserName,
	)
}
