package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Usuários
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		Where("id = ? AND active = true", id).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// ServiceDurations devolve a duração atual de todos os serviços,
// usada como fallback para agendamentos antigos sem snapshot.
func (r *AppointmentGormRepository) ServiceDurations(
	ctx context.Context,
) (map[uint]int, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Select("id", "duration_min").
		Find(&services).Error; err != nil {
		return nil, err
	}

	durations := make(map[uint]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.DurationMin
	}
	return durations, nil
}

// --------------------------------------------------
// Horário de funcionamento
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkDay(
	ctx context.Context,
	weekday int,
) (*models.WorkDay, error) {

	var day models.WorkDay
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment grava dentro de uma transação com re-checagem de
// conflito sob FOR UPDATE. A checagem em memória do use case pode ter
// lido um snapshot velho; aqui o overlap é revalidado atomicamente.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND date = ? AND status <> ? AND start_minute < ? AND end_minute > ?",
				ap.ProfessionalID,
				ap.Date,
				models.StatusCancelled,
				ap.EndMinute,
				ap.StartMinute,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("time_conflict")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND date = ? AND status <> ?",
			professionalID, date, models.StatusCancelled,
		).
		Order("start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("user_id = ?", userID).
		Order("date DESC, start_minute DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("date = ?", date).
		Order("start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("date LIKE ?", prefix+"%").
		Order("date ASC, start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
