package appointment

import (
	"context"
	"time"

	"github.com/kinafsalud/turnos-api/internal/cache"
	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo        domain.Repository
	cache       *cache.Availability
	slotMinutes int
}

func NewGetAvailability(
	repo domain.Repository,
	avCache *cache.Availability,
	slotMinutes int,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		cache:       avCache,
		slotMinutes: slotMinutes,
	}
}

// Execute é a consulta de disponibilidade: leitura pura, sem efeitos.
// in.Date deve chegar já parseada à meia-noite no fuso da clínica.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	dateKey := in.Date.Format("2006-01-02")

	if slots, ok := uc.cache.Get(ctx, in.SedeID, in.ServiceID, dateKey); ok {
		return slots, nil
	}

	weekday := int(in.Date.Weekday())

	schedules, err := uc.repo.ListActiveSchedules(ctx, weekday, in.SedeID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		// sem agenda para o dia não é erro
		return []domain.Slot{}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.ResolveSlots(schedules, booked, uc.slotMinutes)

	uc.cache.Set(ctx, in.SedeID, in.ServiceID, dateKey, slots)

	return slots, nil
}
