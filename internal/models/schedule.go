package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule é a agenda semanal recorrente de um profissional:
// um (profissional, sede, serviço) por dia da semana.
// Weekday segue time.Weekday: 0 = domingo .. 6 = sábado.
type Schedule struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	Professional   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional,omitempty"`

	SedeID uuid.UUID `gorm:"type:uuid;index;not null" json:"sede_id"`
	Sede   *Sede     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sede,omitempty"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	Service   *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	Weekday   int    `gorm:"not null" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
