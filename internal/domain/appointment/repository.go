package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kinafsalud/turnos-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetSede(ctx context.Context, id uuid.UUID) (*models.Sede, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*models.User, error)

	// -------- Agendas semanais --------
	ListActiveSchedules(
		ctx context.Context,
		weekday int,
		sedeID uuid.UUID,
		serviceID uuid.UUID,
	) ([]models.Schedule, error)

	// -------- Turnos do dia --------
	ListAppointmentsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Turno (claim / state change) --------

	// ClaimAppointment insere o turno dentro de uma transação que
	// bloqueia os conflitantes; devolve slot_taken quando o horário
	// já foi tomado.
	ClaimAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Listagens --------
	ListAppointmentsForClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Appointment, error)

	ListAllAppointments(ctx context.Context) ([]models.Appointment, error)
}
