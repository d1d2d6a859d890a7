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

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.Availability,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: auditDisp,
		cache: avCache,
	}
}

// Execute é a mudança administrativa de status. O alvo é livre, mas a
// transição passa pela máquina de estados (invalid_transition).
func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	adminID uuid.UUID,
	appointmentID uuid.UUID,
	status string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := ap.Status
	if err := domain.Transition(ap, domain.Status(status), timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": from, "to": status},
	})

	return ap, nil
}
