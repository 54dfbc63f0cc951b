package appointment

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

// fakeRepo cobre só o que o cálculo de disponibilidade usa; o resto
// devolve "não encontrado".
type fakeRepo struct {
	services     map[uint]models.Service
	workDays     map[int]models.WorkDay
	appointments []models.Appointment
}

var errNotFound = errors.New("not found")

func (f *fakeRepo) GetUser(_ context.Context, _ uint) (*models.User, error) {
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetProfessional(_ context.Context, _ uint) (*models.Professional, error) {
	return nil, errNotFound
}

func (f *fakeRepo) ServiceDurations(_ context.Context) (map[uint]int, error) {
	durations := make(map[uint]int, len(f.services))
	for id, s := range f.services {
		durations[id] = s.DurationMin
	}
	return durations, nil
}

func (f *fakeRepo) GetWorkDay(_ context.Context, weekday int) (*models.WorkDay, error) {
	d, ok := f.workDays[weekday]
	if !ok {
		return nil, errNotFound
	}
	return &d, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, _ uint) (*models.Appointment, error) {
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID == professionalID && ap.Date == date && ap.Status != models.StatusCancelled {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByUser(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsByDate(_ context.Context, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsByMonth(_ context.Context, _ int, _ int) ([]models.Appointment, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func salonWeek() map[int]models.WorkDay {
	return map[int]models.WorkDay{
		// Segunda: 09:00–19:00 com almoço 12:00–13:00
		1: {
			Weekday:    1,
			Open:       true,
			StartTime:  "09:00",
			EndTime:    "19:00",
			HasLunch:   true,
			LunchStart: "12:00",
			LunchEnd:   "13:00",
		},
	}
}

func newGetAvailabilityForTest(repo *fakeRepo) *GetAvailability {
	return NewGetAvailability(repo, &cache.AvailabilityCache{})
}

func TestGetAvailability_Slots(t *testing.T) {
	repo := &fakeRepo{
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Corte", DurationMin: 60, Active: true},
		},
		workDays: salonWeek(),
		appointments: []models.Appointment{
			{
				ProfessionalID: 5,
				Date:           "2026-09-07", // segunda
				Time:           "10:00",
				DurationMin:    60,
				Status:         models.StatusConfirmed,
			},
		},
	}

	uc := newGetAvailabilityForTest(repo)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 5,
		ServiceID:      1,
		Date:           "2026-09-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Closed {
		t.Fatal("expected open day")
	}

	// 09:00 livre (termina quando o 10:00 começa); 09:30–10:30 bloqueados
	// pelo agendamento; 11:00 encosta no almoço; 11:30/12:00/12:30 invadem
	// o almoço; tarde livre até 18:00.
	want := []string{
		"09:00", "11:00",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00", "17:30", "18:00",
	}
	if !reflect.DeepEqual(out.Slots, want) {
		t.Fatalf("got %v, want %v", out.Slots, want)
	}
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := &fakeRepo{
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Corte", DurationMin: 60, Active: true},
		},
		workDays: salonWeek(), // domingo sem configuração = fechado
	}

	uc := newGetAvailabilityForTest(repo)

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 5,
		ServiceID:      1,
		Date:           "2026-09-06", // domingo
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Closed {
		t.Fatal("expected closed day")
	}
	if len(out.Slots) != 0 {
		t.Fatalf("expected no slots, got %v", out.Slots)
	}
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	repo := &fakeRepo{workDays: salonWeek()}
	uc := newGetAvailabilityForTest(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 5,
		ServiceID:      99,
		Date:           "2026-09-07",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo := &fakeRepo{
		services: map[uint]models.Service{
			1: {ID: 1, DurationMin: 60, Active: true},
		},
		workDays: salonWeek(),
	}
	uc := newGetAvailabilityForTest(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 5,
		ServiceID:      1,
		Date:           "07/09/2026",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}
