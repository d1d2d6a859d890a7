package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings é um singleton: o handler cria a primeira linha on demand.
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName     string `gorm:"size:100;default:'Kinaf'" json:"site_name"`
	HeroTitle    string `gorm:"size:255" json:"hero_title"`
	HeroSubtitle string `gorm:"size:255" json:"hero_subtitle"`
	Phone        string `gorm:"size:30" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:255" json:"address"`
	Instagram    string `gorm:"size:100" json:"instagram"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Content    string `gorm:"size:500;not null" json:"content"`
	Rating     int    `gorm:"default:5" json:"rating"`
	Active     bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusArchived = "archived"
)

type ContactMessage struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Message string `gorm:"size:1000;not null" json:"message"`
	Status  string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
