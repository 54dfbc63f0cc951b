package appointment

import (
	"context"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

type Repository interface {
	// -------- Usuários --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	ServiceDurations(
		ctx context.Context,
	) (map[uint]int, error)

	// -------- Horário de funcionamento --------
	GetWorkDay(
		ctx context.Context,
		weekday int,
	) (*models.WorkDay, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagens --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByMonth(
		ctx context.Context,
		year int,
		month int,
	) ([]models.Appointment, error)
}
