package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/httpresp"
	"github.com/kinafsalud/turnos-api/internal/models"
)

// IntegrityHandler reporta problemas de dados que a disponibilidade
// tolera em silêncio: referências penduradas em agendas e turnos
// duplicados para o mesmo (profissional, dia, hora).
type IntegrityHandler struct {
	db *gorm.DB
}

func NewIntegrityHandler(db *gorm.DB) *IntegrityHandler {
	return &IntegrityHandler{db: db}
}

type DanglingSchedule struct {
	ScheduleID          string `json:"schedule_id"`
	MissingProfessional bool   `json:"missing_professional"`
	MissingSede         bool   `json:"missing_sede"`
	MissingService      bool   `json:"missing_service"`
}

type DoubleBooking struct {
	ProfessionalID string `json:"professional_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	Count          int    `json:"count"`
}

type IntegrityReport struct {
	DanglingSchedules []DanglingSchedule `json:"dangling_schedules"`
	DoubleBookings    []DoubleBooking    `json:"double_bookings"`
}

func (h *IntegrityHandler) Report(c *gin.Context) {
	report := IntegrityReport{
		DanglingSchedules: []DanglingSchedule{},
		DoubleBookings:    []DoubleBooking{},
	}

	var schedules []models.Schedule
	if err := h.db.
		Preload("Professional").
		Preload("Sede").
		Preload("Service").
		Where("active = true").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "integrity_failed", "Error generando el reporte.")
		return
	}

	for _, sc := range schedules {
		d := DanglingSchedule{
			ScheduleID:          sc.ID.String(),
			MissingProfessional: sc.Professional == nil,
			MissingSede:         sc.Sede == nil,
			MissingService:      sc.Service == nil,
		}
		if d.MissingProfessional || d.MissingSede || d.MissingService {
			report.DanglingSchedules = append(report.DanglingSchedules, d)
		}
	}

	rows := []struct {
		ProfessionalID string
		Date           string
		StartTime      string
		Count          int
	}{}

	if err := h.db.
		Model(&models.Appointment{}).
		Select("professional_id, to_char(date, 'YYYY-MM-DD') AS date, start_time, COUNT(*) AS count").
		Where("status <> ?", string(domain.StatusCancelled)).
		Group("professional_id, to_char(date, 'YYYY-MM-DD'), start_time").
		Having("COUNT(*) > 1").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "integrity_failed", "Error generando el reporte.")
		return
	}

	for _, r := range rows {
		report.DoubleBookings = append(report.DoubleBookings, DoubleBooking{
			ProfessionalID: r.ProfessionalID,
			Date:           r.Date,
			StartTime:      r.StartTime,
			Count:          r.Count,
		})
	}

	httpresp.OK(c, report)
}
