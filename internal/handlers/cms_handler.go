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

type CMSHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCMSHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *CMSHandler {
	return &CMSHandler{db: db, audit: auditDisp}
}

// ======================================================
// SETTINGS (singleton, criado on demand)
// ======================================================

func (h *CMSHandler) GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			httperr.Internal(c, "failed_to_get_settings", "Error interno.")
			return
		}
		if err := h.db.Create(&settings).Error; err != nil {
			httperr.Internal(c, "failed_to_create_settings", "Error interno.")
			return
		}
	}

	httpresp.OK(c, settings)
}

type UpdateSettingsRequest struct {
	SiteName     string `json:"site_name"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Instagram    string `json:"instagram"`
}

func (h *CMSHandler) UpdateSettings(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_get_settings", "Error interno.")
		return
	}

	settings.SiteName = req.SiteName
	settings.HeroTitle = req.HeroTitle
	settings.HeroSubtitle = req.HeroSubtitle
	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.Address = req.Address
	settings.Instagram = req.Instagram

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Error al guardar la configuración.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID: &adminID,
		Action:  "settings_updated",
		Entity:  "site_settings",
	})

	httpresp.OK(c, settings)
}

// ======================================================
// TESTIMONIALS
// ======================================================

func (h *CMSHandler) ListTestimonials(c *gin.Context) {
	var list []models.Testimonial
	if err := h.db.Where("active = true").Order("created_at DESC").Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Error interno.")
		return
	}

	httpresp.List(c, list)
}

type CreateTestimonialRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating"`
}

func (h *CMSHandler) CreateTestimonial(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	rating := req.Rating
	if rating < 1 || rating > 5 {
		rating = 5
	}

	item := models.Testimonial{
		ClientName: req.ClientName,
		Content:    req.Content,
		Rating:     rating,
		Active:     true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Error interno.")
		return
	}

	httpresp.Created(c, item)
}

// ======================================================
// CONTACT
// ======================================================

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *CMSHandler) SendContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_contact", "Error al enviar el mensaje.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Mensaje enviado"})
}

func (h *CMSHandler) ListContactMessages(c *gin.Context) {
	var msgs []models.ContactMessage
	if err := h.db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "Error interno.")
		return
	}

	httpresp.List(c, msgs)
}
