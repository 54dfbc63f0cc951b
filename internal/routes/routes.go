package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/audit"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/cache"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/config"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/handlers"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/infra/repository"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/middleware"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/notification"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/storage"
	ucAppointment "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/usecase/appointment"
)

// ======================================================
// ROTAS
// ======================================================

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availCache *cache.AvailabilityCache,
) {
	// -------- Infra compartilhada --------
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	repo := repository.NewAppointmentGormRepository(db)
	composer := notification.NewComposer(cfg.GeminiAPIKey)
	uploader := storage.NewUploader(cfg)

	// -------- Use cases --------
	getAvailability := ucAppointment.NewGetAvailability(repo, availCache)
	book := ucAppointment.NewBookAppointment(repo, auditDispatcher, availCache)
	createDirect := ucAppointment.NewCreateDirectAppointment(repo, auditDispatcher, availCache)
	updateStatus := ucAppointment.NewUpdateStatus(repo, auditDispatcher, availCache)
	cancel := ucAppointment.NewCancelAppointment(repo, auditDispatcher, availCache)
	attachReview := ucAppointment.NewAttachReview(repo, auditDispatcher)
	listByDate := ucAppointment.NewListAppointmentsByDate(repo)
	listByMonth := ucAppointment.NewListAppointmentsByMonth(repo)

	// -------- Handlers --------
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db, auditDispatcher, availCache)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailability)
	appointmentHandler := handlers.NewAppointmentHandler(
		repo, book, createDirect, updateStatus, cancel,
		attachReview, listByDate, listByMonth,
	)
	messageHandler := handlers.NewMessageHandler(repo, composer)
	uploadHandler := handlers.NewUploadHandler(uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ==================================================
	// PÚBLICO
	// ==================================================
	r.GET("/api/services", serviceHandler.List)
	r.GET("/api/professionals", professionalHandler.List)
	r.GET("/api/business-hours", businessHoursHandler.Get)
	r.GET("/api/availability", availabilityHandler.Get)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ==================================================
	// CLIENTE AUTENTICADO
	// ==================================================
	client := r.Group("/api")
	client.Use(middleware.AuthMiddleware(cfg))
	{
		client.POST("/appointments", appointmentHandler.Book)
		client.GET("/me/appointments", appointmentHandler.ListMine)
		client.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		client.POST("/appointments/:id/review", appointmentHandler.Review)
	}

	// ==================================================
	// ADMINISTRAÇÃO
	// ==================================================
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
	{
		admin.GET("/appointments", appointmentHandler.List)
		admin.POST("/appointments", appointmentHandler.CreateDirect)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		admin.POST("/appointments/:id/message", messageHandler.Compose)

		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Deactivate)

		admin.POST("/professionals", professionalHandler.Create)
		admin.PUT("/professionals/:id", professionalHandler.Update)
		admin.DELETE("/professionals/:id", professionalHandler.Deactivate)

		admin.GET("/business-hours", businessHoursHandler.Get)
		admin.PUT("/business-hours", businessHoursHandler.Update)

		admin.POST("/uploads", uploadHandler.Image)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
