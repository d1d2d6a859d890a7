package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/models"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForClient(ctx, clientID)
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListAllAppointments(ctx)
}
