package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/cache"
	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/models"
	"github.com/kinafsalud/turnos-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: avCache,
	}
}

// Execute é o auto-cancelamento do cliente: só o dono cancela, e só
// para o estado cancelled.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ClientID != clientID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
