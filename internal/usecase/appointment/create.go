package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/cache"
	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/models"
	"github.com/kinafsalud/turnos-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	SedeID         uuid.UUID

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	Notes    string
	IsWalkIn bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	cache       *cache.Availability
	slotMinutes int
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.Availability,
	slotMinutes int,
) *CreateAppointment {
	return &CreateAppointment{
		repo:        repo,
		audit:       auditDisp,
		cache:       avCache,
		slotMinutes: slotMinutes,
	}
}

// Execute reserva um turno. A checagem de conflito e o insert rodam
// na mesma transação (ClaimAppointment): dois clientes disputando o
// mesmo horário ⇒ exatamente um ganha, o outro recebe slot_taken.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(timezone.DefaultTimezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	sede, err := uc.repo.GetSede(ctx, in.SedeID)
	if err != nil || !sede.Active {
		return nil, httperr.ErrBusiness("sede_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil || pro.Role != models.RoleProfessional || !pro.Active {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	// o horário pedido precisa sair de uma agenda ativa do profissional
	weekday := int(date.Weekday())
	schedules, err := uc.repo.ListActiveSchedules(ctx, weekday, in.SedeID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	covered := false
	for _, sc := range schedules {
		if sc.ProfessionalID != in.ProfessionalID {
			continue
		}
		if domain.CoversSlot(sc, in.StartTime, uc.slotMinutes) {
			covered = true
			break
		}
	}
	if !covered {
		return nil, httperr.ErrBusiness("outside_schedule")
	}

	ap := &models.Appointment{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		SedeID:         in.SedeID,
		Date:           date,
		StartTime:      in.StartTime,
		EndTime:        domain.EndTimeFor(in.StartTime, service.DurationMin),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
		IsWalkIn:       in.IsWalkIn,
	}

	if err := uc.repo.ClaimAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.Date)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": in.Date,
			"time": in.StartTime,
			"sede": in.SedeID,
			"pro":  in.ProfessionalID,
			"walk": in.IsWalkIn,
		},
	})

	return ap, nil
}
