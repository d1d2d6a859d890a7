package appointment

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityInput struct {
	Date      time.Time
	ServiceID uuid.UUID
	SedeID    uuid.UUID
}

type ProfessionalRef struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// Slot é um horário ofertado para reserva: hora "HH:MM" + profissional.
type Slot struct {
	Time         string          `json:"time"`
	Professional ProfessionalRef `json:"professional"`
}
