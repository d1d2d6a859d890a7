package handlers

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/httpresp"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/models"
)

type SedeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSedeHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *SedeHandler {
	return &SedeHandler{db: db, audit: auditDisp}
}

type CreateSedeRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

var nonSlugChars = regexp.MustCompile(`[^\w\-]+`)
var dashRuns = regexp.MustCompile(`\-\-+`)

func generateSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (h *SedeHandler) List(c *gin.Context) {
	var sedes []models.Sede
	if err := h.db.Where("active = true").Order("name ASC").Find(&sedes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sedes", "Error al listar sedes.")
		return
	}

	httpresp.List(c, sedes)
}

func (h *SedeHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateSedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	slug := generateSlug(req.Name)

	var count int64
	h.db.Model(&models.Sede{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Ya existe una sede con ese nombre.")
		return
	}

	sede := models.Sede{
		Name:    req.Name,
		Slug:    slug,
		Address: req.Address,
		Active:  true,
	}

	if err := h.db.Create(&sede).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sede", "Error al crear la sede.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "sede_created",
		Entity:   "sede",
		EntityID: &sede.ID,
	})

	httpresp.Created(c, sede)
}

func (h *SedeHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	sedeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.db.Delete(&models.Sede{}, "id = ?", sedeID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_sede", "Error al eliminar la sede.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "sede_deleted",
		Entity:   "sede",
		EntityID: &sedeID,
	})

	httpresp.OK(c, gin.H{"message": "Sede eliminada"})
}
