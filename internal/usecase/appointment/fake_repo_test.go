package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kinafsalud/turnos-api/internal/models"
)

// fakeRepo implementa domain.Repository via campos-função: cada teste
// configura só o que usa; o resto explode com panic se for chamado.
type fakeRepo struct {
	getSede         func(ctx context.Context, id uuid.UUID) (*models.Sede, error)
	getService      func(ctx context.Context, id uuid.UUID) (*models.Service, error)
	getProfessional func(ctx context.Context, id uuid.UUID) (*models.User, error)

	listActiveSchedules    func(ctx context.Context, weekday int, sedeID, serviceID uuid.UUID) ([]models.Schedule, error)
	listAppointmentsForDay func(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	claimAppointment  func(ctx context.Context, ap *models.Appointment) error
	getAppointment    func(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	updateAppointment func(ctx context.Context, ap *models.Appointment) error

	listAppointmentsForClient func(ctx context.Context, clientID uuid.UUID) ([]models.Appointment, error)
	listAllAppointments       func(ctx context.Context) ([]models.Appointment, error)
}

func (f *fakeRepo) GetSede(ctx context.Context, id uuid.UUID) (*models.Sede, error) {
	if f.getSede == nil {
		panic("fakeRepo.GetSede not configured")
	}
	return f.getSede(ctx, id)
}

func (f *fakeRepo) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if f.getService == nil {
		panic("fakeRepo.GetService not configured")
	}
	return f.getService(ctx, id)
}

func (f *fakeRepo) GetProfessional(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.getProfessional == nil {
		panic("fakeRepo.GetProfessional not configured")
	}
	return f.getProfessional(ctx, id)
}

func (f *fakeRepo) ListActiveSchedules(ctx context.Context, weekday int, sedeID, serviceID uuid.UUID) ([]models.Schedule, error) {
	if f.listActiveSchedules == nil {
		panic("fakeRepo.ListActiveSchedules not configured")
	}
	return f.listActiveSchedules(ctx, weekday, sedeID, serviceID)
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.listAppointmentsForDay == nil {
		panic("fakeRepo.ListAppointmentsForDay not configured")
	}
	return f.listAppointmentsForDay(ctx, dayStart, dayEnd)
}

func (f *fakeRepo) ClaimAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.claimAppointment == nil {
		panic("fakeRepo.ClaimAppointment not configured")
	}
	return f.claimAppointment(ctx, ap)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if f.getAppointment == nil {
		panic("fakeRepo.GetAppointment not configured")
	}
	return f.getAppointment(ctx, id)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateAppointment == nil {
		panic("fakeRepo.UpdateAppointment not configured")
	}
	return f.updateAppointment(ctx, ap)
}

func (f *fakeRepo) ListAppointmentsForClient(ctx context.Context, clientID uuid.UUID) ([]models.Appointment, error) {
	if f.listAppointmentsForClient == nil {
		panic("fakeRepo.ListAppointmentsForClient not configured")
	}
	return f.listAppointmentsForClient(ctx, clientID)
}

func (f *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.listAllAppointments == nil {
		panic("fakeRepo.ListAllAppointments not configured")
	}
	return f.listAllAppointments(ctx)
}
