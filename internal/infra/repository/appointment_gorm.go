package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSede(
	ctx context.Context,
	id uuid.UUID,
) (*models.Sede, error) {

	var sede models.Sede
	if err := r.db.WithContext(ctx).First(&sede, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sede, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Agendas semanais
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveSchedules(
	ctx context.Context,
	weekday int,
	sedeID uuid.UUID,
	serviceID uuid.UUID,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Where(
			"weekday = ? AND sede_id = ? AND service_id = ? AND active = true",
			weekday, sedeID, serviceID,
		).
		Order("created_at ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// --------------------------------------------------
// Turnos do dia
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("professional_id", "start_time", "status").
		Where(
			"date >= ? AND date < ? AND status <> ?",
			dayStart, dayEnd, string(domain.StatusCancelled),
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Claim (transação + índice único fecham a corrida)
// --------------------------------------------------

// ClaimAppointment reserva o horário em duas camadas: o FOR UPDATE
// serializa contra conflitos já visíveis, e o índice único parcial
// (uq_appointments_claim) decide quando dois claims inserem o mesmo
// horário livre ao mesmo tempo — em READ COMMITTED o insert do vizinho
// não aparece no select, só no commit. O perdedor recebe slot_taken
// pelos dois caminhos.
func (r *AppointmentGormRepository) ClaimAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayStart := time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		0, 0, 0, 0,
		ap.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND date >= ? AND date < ? AND start_time = ? AND status <> ?",
				ap.ProfessionalID, dayStart, dayEnd, ap.StartTime,
				string(domain.StatusCancelled),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return claimCreateError(tx.Create(ap).Error)
	})
}

// claimCreateError traduz a violação do índice único de claim para o
// erro de negócio; qualquer outro erro sobe intacto.
func claimCreateError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// --------------------------------------------------
// Turno (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
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

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Sede").
		Preload("Professional").
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Sede").
		Preload("Professional").
		Order("date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
