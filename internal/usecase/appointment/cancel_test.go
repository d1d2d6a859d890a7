package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:             uuid.New(),
		ClientID:       testClientID,
		ProfessionalID: testProID,
		ServiceID:      testServiceID,
		SedeID:         testSedeID,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		Status:         string(domain.StatusPending),
	}
}

func TestCancelAppointment_Success(t *testing.T) {
	var saved *models.Appointment

	repo := &fakeRepo{
		getAppointment: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
			return pendingAppointment(), nil
		},
		updateAppointment: func(_ context.Context, ap *models.Appointment) error {
			saved = ap
			return nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), testClientID, uuid.New())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatalf("cancelled_at not stamped")
	}
	if saved == nil {
		t.Fatalf("appointment not persisted")
	}
}

func TestCancelAppointment_NotOwner(t *testing.T) {
	repo := &fakeRepo{
		getAppointment: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
			return pendingAppointment(), nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	// outro cliente: respondemos not_found para não vazar existência
	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New())
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("err = %v, want appointment_not_found", err)
	}
}

func TestCancelAppointment_CompletedIsFinal(t *testing.T) {
	repo := &fakeRepo{
		getAppointment: func(_ context.Context, _ uuid.UUID) (*models.Appointment, error) {
			ap := pendingAppointment()
			ap.Status = string(domain.StatusCompleted)
			return ap, nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), testClientID, uuid.New())
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("err = %v, want invalid_transition", err)
	}
}
