package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/httpresp"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: auditDisp}
}

type CreateScheduleRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	SedeID         string `json:"sedeId" binding:"required"`
	ServiceID      string `json:"serviceId" binding:"required"`
	Weekday        *int   `json:"dayOfWeek" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"`
	EndTime        string `json:"endTime" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if *req.Weekday < 0 || *req.Weekday > 6 {
		httperr.BadRequest(c, "invalid_weekday", "dayOfWeek debe estar entre 0 y 6.")
		return
	}

	if !parseClockString(req.StartTime) || !parseClockString(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "startTime/endTime deben ser HH:MM.")
		return
	}

	// "HH:MM" com zero à esquerda compara bem como string
	if req.StartTime >= req.EndTime {
		httperr.BadRequest(c, "invalid_time_range", "startTime debe ser menor que endTime.")
		return
	}

	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "professionalId inválido.")
		return
	}
	sedeID, err := uuid.Parse(req.SedeID)
	if err != nil {
		httperr.BadRequest(c, "invalid_sede_id", "sedeId inválido.")
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "serviceId inválido.")
		return
	}

	var pro models.User
	if err := h.db.
		Where("id = ? AND role = ?", professionalID, models.RoleProfessional).
		First(&pro).Error; err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profesional no encontrado.")
		return
	}

	schedule := models.Schedule{
		ProfessionalID: professionalID,
		SedeID:         sedeID,
		ServiceID:      serviceID,
		Weekday:        *req.Weekday,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Active:         true,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Error al crear el horario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &schedule.ID,
	})

	httpresp.Created(c, schedule)
}

// ======================================================
// LIST (ativas, com referências)
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	var schedules []models.Schedule
	if err := h.db.
		Preload("Professional").
		Preload("Sede").
		Preload("Service").
		Where("active = true").
		Order("weekday ASC, start_time ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Error al listar horarios.")
		return
	}

	httpresp.List(c, schedules)
}

// ======================================================
// DELETE (hard delete: sai da disponibilidade na hora)
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.db.Delete(&models.Schedule{}, "id = ?", scheduleID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Error al eliminar el horario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &scheduleID,
	})

	httpresp.OK(c, gin.H{"message": "Horario eliminado"})
}
