package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/audit"
	"github.com/itabaza/hms-api/internal/cache"
	"github.com/itabaza/hms-api/internal/config"
	"github.com/itabaza/hms-api/internal/handlers"
	infraRepo "github.com/itabaza/hms-api/internal/infra/repository"
	"github.com/itabaza/hms-api/internal/mail"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/storage"
	"github.com/itabaza/hms-api/internal/store"
	ucAppointment "github.com/itabaza/hms-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	patientStore := store.NewPatientStore(db)
	doctorStore := store.NewDoctorStore(db)
	departmentStore := store.NewDepartmentStore(db)
	documentStore := store.NewDocumentStore(db)
	ticketStore := store.NewTicketStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	doctorCache := cache.NewDoctorCache(cfg.Redis, log)
	s3Storage := storage.NewS3Storage(cfg.S3)
	mailer := mail.New(cfg.Mail)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(patientStore, doctorStore, cfg)
	patientHandler := handlers.NewPatientHandler(patientStore)
	doctorHandler := handlers.NewDoctorHandler(doctorStore, doctorCache, auditDispatcher, log)
	departmentHandler := handlers.NewDepartmentHandler(departmentStore)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		appointmentRepo,
		patientStore,
		mailer,
		log,
	)

	documentHandler := handlers.NewDocumentHandler(documentStore, patientStore, s3Storage, auditDispatcher, log)
	dashboardHandler := handlers.NewDashboardHandler(db, documentStore)
	ticketHandler := handlers.NewTicketHandler(ticketStore, patientStore, doctorStore, mailer, auditDispatcher, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/patient/signup", authHandler.PatientSignup)
		api.POST("/auth/patient/signin", authHandler.PatientSignin)
		api.POST("/auth/doctor/signup", authHandler.DoctorSignup)
		api.POST("/auth/doctor/signin", authHandler.DoctorSignin)

		api.GET("/doctors", doctorHandler.ListAvailable)
		api.GET("/doctors/:id", doctorHandler.GetByID)
		api.GET("/departments", departmentHandler.List)
		api.GET("/departments/:id/doctors", doctorHandler.ListByDepartment)
		api.GET("/slots", appointmentHandler.ListSlots)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Self-service routes live under /profile and /schedule so they
			// never collide with the :id wildcards used by the admin routes.
			secured.GET("/profile", patientHandler.GetMe)
			secured.PATCH("/profile", patientHandler.UpdateMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments/:doctorId", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.GET("/patients/:id/appointments", appointmentHandler.ListForPatient)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/schedule", appointmentHandler.ListForDoctor)
			secured.PATCH("/availability", doctorHandler.UpdateAvailability)

			// ------------------------------
			// DASHBOARD + DOCUMENTS
			// ------------------------------
			secured.GET("/dashboard/patient/:id", dashboardHandler.PatientDashboard)
			secured.GET("/dashboard/patient/:id/documents", dashboardHandler.PatientDocuments)

			secured.POST("/documents/patient/:patientId", documentHandler.Upload)
			secured.PATCH("/documents/:id/access", documentHandler.SetAccess)
			secured.GET("/documents/mine", documentHandler.ListMine)

			// ------------------------------
			// SUPPORT
			// ------------------------------
			secured.POST("/support", ticketHandler.Create)
			secured.GET("/support/me", ticketHandler.ListMine)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("/departments", departmentHandler.Create)
				admin.PATCH("/doctors/:id/status", doctorHandler.SetStatus)
				admin.GET("/support", ticketHandler.ListAll)
				admin.PATCH("/support/:id/status", ticketHandler.UpdateStatus)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
