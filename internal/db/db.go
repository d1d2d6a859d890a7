package db

import (
	"log"
	"time"

	"github.com/kinafsalud/turnos-api/internal/config"
	"github.com/kinafsalud/turnos-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Sede{},
		&models.Service{},
		&models.Schedule{},
		&models.Appointment{},
		&models.SiteSettings{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Garante no máximo um turno não cancelado por
	// (profissional, dia, horário), mesmo sob claims concorrentes.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_claim
		 ON appointments (professional_id, date, start_time)
		 WHERE status <> 'cancelled'`,
	).Error; err != nil {
		log.Fatalf("failed to create claim index: %v", err)
	}

	return db
}
