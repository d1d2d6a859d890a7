package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
	"github.com/kinafsalud/turnos-api/internal/httperr"
	"github.com/kinafsalud/turnos-api/internal/httpresp"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/payments"
	ucAppointment "github.com/kinafsalud/turnos-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	setStatusUC    *ucAppointment.SetAppointmentStatus
	listMyUC       *ucAppointment.ListMyAppointments
	listAllUC      *ucAppointment.ListAppointments

	checkout *payments.Checkout
	repo     domain.Repository
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	setStatusUC *ucAppointment.SetAppointmentStatus,
	listMyUC *ucAppointment.ListMyAppointments,
	listAllUC *ucAppointment.ListAppointments,
	checkout *payments.Checkout,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		setStatusUC:    setStatusUC,
		listMyUC:       listMyUC,
		listAllUC:      listAllUC,
		checkout:       checkout,
		repo:           repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	SedeID         string `json:"sedeId" binding:"required"`
	ServiceID      string `json:"serviceId" binding:"required"`
	ProfessionalID string `json:"professionalId" binding:"required"`
	Date           string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime      string `json:"startTime" binding:"required"` // HH:MM
	Notes          string `json:"notes"`
	IsWalkIn       bool   `json:"isWalkIn"`
	PayOnline      bool   `json:"payOnline"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// SLOTS (a consulta de disponibilidade)
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("serviceId")
	sedeIDStr := c.Query("sedeId")

	if dateStr == "" || serviceIDStr == "" || sedeIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Faltan parámetros: date, serviceId y sedeId son obligatorios.")
		return
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "serviceId inválido.")
		return
	}

	sedeID, err := uuid.Parse(sedeIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_sede_id", "sedeId inválido.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:      date,
			ServiceID: serviceID,
			SedeID:    sedeID,
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Error calculando turnos.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE (claim transacional)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
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
	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "professionalId inválido.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       clientID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		SedeID:         sedeID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		Notes:          req.Notes,
		IsWalkIn:       req.IsWalkIn,
	})
	if err != nil {
		h.mapCreateError(c, err)
		return
	}

	resp := gin.H{"appointment": ap}

	if req.PayOnline {
		service, serr := h.repo.GetService(c.Request.Context(), serviceID)
		if serr == nil {
			if initPoint, perr := h.checkout.PreferenceFor(c.Request.Context(), ap, service); perr == nil && initPoint != "" {
				resp["payment_url"] = initPoint
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": resp})
}

func (h *AppointmentHandler) mapCreateError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear el turno.")
		return
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "El horario acaba de ser tomado.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Fecha inválida.")
	case "outside_schedule":
		httperr.BadRequest(c, code, "El horario no pertenece a una agenda activa.")
	case "sede_not_found", "service_not_found", "professional_not_found":
		httperr.BadRequest(c, code, "Referencia inválida.")
	default:
		httperr.BadRequest(c, code, "No se pudo crear el turno.")
	}
}

// ======================================================
// MY / CANCEL (cliente)
// ======================================================

func (h *AppointmentHandler) My(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	apps, err := h.listMyUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error interno.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), clientID, appointmentID)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_transition") {
			httperr.BadRequest(c, "invalid_transition", "El turno no puede cancelarse.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Error al cancelar el turno.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ADMIN
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error interno.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), adminID, appointmentID, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Transición de estado no permitida.")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Error interno.")
		return
	}

	httpresp.OK(c, ap)
}
