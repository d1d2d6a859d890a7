package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	Professional   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional,omitempty"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	Service   *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	SedeID uuid.UUID `gorm:"type:uuid;index;not null" json:"sede_id"`
	Sede   *Sede     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sede,omitempty"`

	// Date é o dia do turno; StartTime/EndTime são strings "HH:MM"
	// no fuso da clínica.
	Date      time.Time `gorm:"index;not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes    string `gorm:"size:255" json:"notes"`
	IsWalkIn bool   `gorm:"default:false" json:"is_walk_in"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
