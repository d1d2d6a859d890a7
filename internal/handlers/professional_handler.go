package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/httpresp"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/models"
	"github.com/kinafsalud/turnos-api/internal/storage"
)

type ProfessionalHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	avatars *storage.AvatarStore
}

func NewProfessionalHandler(
	db *gorm.DB,
	auditDisp *audit.Dispatcher,
	avatars *storage.AvatarStore,
) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: auditDisp, avatars: avatars}
}

type CreateProfessionalRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// ProfessionalDTO expõe só o que o público precisa ver.
type ProfessionalDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var pros []models.User
	if err := h.db.
		Where("role = ? AND active = true", models.RoleProfessional).
		Order("last_name ASC").
		Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Error al listar profesionales.")
		return
	}

	out := make([]ProfessionalDTO, 0, len(pros))
	for _, p := range pros {
		out = append(out, ProfessionalDTO{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			AvatarURL: p.AvatarURL,
		})
	}

	httpresp.List(c, out)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "El email ya está registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	pro := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleProfessional,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Error al crear el profesional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "professional_created",
		Entity:   "user",
		EntityID: &pro.ID,
	})

	httpresp.Created(c, ProfessionalDTO{
		ID:        pro.ID,
		FirstName: pro.FirstName,
		LastName:  pro.LastName,
		Email:     pro.Email,
	})
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	proID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.db.
		Delete(&models.User{}, "id = ? AND role = ?", proID, models.RoleProfessional).
		Error; err != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Error al eliminar el profesional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "professional_deleted",
		Entity:   "user",
		EntityID: &proID,
	})

	httpresp.OK(c, gin.H{"message": "Profesional eliminado"})
}

// ======================================================
// AVATAR (multipart → webp → S3)
// ======================================================

func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	proID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var pro models.User
	if err := h.db.
		Where("id = ? AND role = ?", proID, models.RoleProfessional).
		First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profesional no encontrado.")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Falta el archivo 'avatar'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Error al leer el archivo.")
		return
	}
	defer src.Close()

	url, err := h.avatars.Put(c.Request.Context(), pro.ID.String(), src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "El archivo no es una imagen válida.")
			return
		}
		httperr.Internal(c, "failed_to_upload_avatar", "Error al subir la imagen.")
		return
	}

	pro.AvatarURL = url
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Error al guardar la imagen.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "professional_avatar_updated",
		Entity:   "user",
		EntityID: &pro.ID,
	})

	httpresp.OK(c, gin.H{"avatar_url": url})
}
