package appointment

import (
	"time"

	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// transitions legais:
//
//	pending   → confirmed | cancelled
//	confirmed → cancelled | completed
//	cancelled, completed → (terminal)
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ===============================
// Domain Actions
// ===============================

// Transition aplica a máquina de estados e carimba os timestamps
// de cancelamento/conclusão.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(Status(ap.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}
