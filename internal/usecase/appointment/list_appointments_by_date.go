package appointment

import (
	"context"

	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/dto"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			Date:             ap.Date,
			Time:             ap.Time,
			DurationMin:      ap.DurationMin,
			Status:           ap.Status,
			StatusLabel:      models.StatusLabels[ap.Status],
			ClientName:       ap.UserName,
			ServiceName:      ap.Service.Name,
			ProfessionalName: ap.Professional.Name,
			Rating:           ap.Rating,
		})
	}
	return out
}
