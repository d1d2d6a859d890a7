package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kinafsalud/turnos-api/internal/audit"
	"github.com/kinafsalud/turnos-api/internal/cache"
	"github.com/kinafsalud/turnos-api/internal/config"
	"github.com/kinafsalud/turnos-api/internal/handlers"
	infraRepo "github.com/kinafsalud/turnos-api/internal/infra/repository"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/models"
	"github.com/kinafsalud/turnos-api/internal/payments"
	"github.com/kinafsalud/turnos-api/internal/storage"
	ucAppointment "github.com/kinafsalud/turnos-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := cache.NewRedis(cfg)
	availabilityCache := cache.NewAvailability(rdb)

	avatarStore := storage.NewAvatarStore(cfg)

	checkout, err := payments.NewCheckout(cfg.MercadoPagoToken)
	if err != nil {
		slog.Warn("mercado pago disabled", "err", err)
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		cfg.SlotMinutes,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		cfg.SlotMinutes,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
	)

	listMyUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listAllUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		setStatusUC,
		listMyUC,
		listAllUC,
		checkout,
		appointmentRepo,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher)
	sedeHandler := handlers.NewSedeHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher, avatarStore)
	cmsHandler := handlers.NewCMSHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	integrityHandler := handlers.NewIntegrityHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/sedes", sedeHandler.List)
		api.GET("/services", serviceHandler.List)
		api.GET("/settings", cmsHandler.GetSettings)
		api.GET("/testimonials", cmsHandler.ListTestimonials)
		api.POST("/contact", cmsHandler.SendContact)
		api.GET("/slots", appointmentHandler.Slots)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// PROTEGIDO (qualquer usuário logado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my", appointmentHandler.My)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/appointments", appointmentHandler.List)
				admin.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

				admin.POST("/services", serviceHandler.Create)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/sedes", sedeHandler.Create)
				admin.DELETE("/sedes/:id", sedeHandler.Delete)

				admin.GET("/users/professionals", professionalHandler.List)
				admin.POST("/users/professionals", professionalHandler.Create)
				admin.DELETE("/users/professionals/:id", professionalHandler.Delete)
				admin.POST("/users/professionals/:id/avatar", professionalHandler.UploadAvatar)

				admin.GET("/schedules", scheduleHandler.List)
				admin.POST("/schedules", scheduleHandler.Create)
				admin.DELETE("/schedules/:id", scheduleHandler.Delete)

				admin.PUT("/settings", cmsHandler.UpdateSettings)
				admin.POST("/testimonials", cmsHandler.CreateTestimonial)
				admin.GET("/contact", cmsHandler.ListContactMessages)

				admin.GET("/audit-logs", auditLogsHandler.List)
				admin.GET("/integrity", integrityHandler.Report)
			}
		}
	}
}
