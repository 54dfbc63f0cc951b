package appointment

import (
	"context"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/schedule"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, c *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if cached, ok := uc.cache.Get(ctx, in.ProfessionalID, in.ServiceID, in.Date); ok {
		return &domain.Availability{
			Date:   in.Date,
			Closed: cached.Closed,
			Slots:  cached.Slots,
		}, nil
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	weekday := int(date.Weekday())

	// Dia sem configuração é tratado como fechado
	var window schedule.Window
	if day, err := uc.repo.GetWorkDay(ctx, weekday); err == nil {
		window = schedule.WorkingWindow(*day)
	}

	out := &domain.Availability{Date: in.Date, Slots: []string{}}

	if !window.Open {
		out.Closed = true
		uc.storeCache(ctx, in, out)
		return out, nil
	}

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, in.Date)
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

	busy := schedule.BusyIntervals(window, existing, resolve)
	slots, closed := schedule.ComputeSlots(window, service.DurationMin, busy, schedule.StepMinutes)

	out.Closed = closed
	out.Slots = schedule.FormatSlots(slots)

	uc.storeCache(ctx, in, out)
	return out, nil
}

func (uc *GetAvailability) storeCache(ctx context.Context, in domain.AvailabilityInput, out *domain.Availability) {
	uc.cache.Set(ctx, in.ProfessionalID, in.ServiceID, in.Date, cache.CachedAvailability{
		Closed: out.Closed,
		Slots:  out.Slots,
	})
}
