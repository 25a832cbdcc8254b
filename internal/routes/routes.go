package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var availCache cache.AvailabilityCache = cache.NewNoopAvailabilityCache()
	if cfg.RedisAddr != "" {
		availCache = cache.NewRedisAvailabilityCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY / SCHEDULE
	// ======================================================
	getAvailableSlotsUC := ucAvailability.NewGetAvailableSlots(
		scheduleRepo,
		availCache,
		cfg.MaxBookingDays,
	)

	addWeeklySlotUC := ucSchedule.NewAddWeeklySlot(
		scheduleRepo,
		auditDispatcher,
		availCache,
	)

	removeWeeklySlotUC := ucSchedule.NewRemoveWeeklySlot(
		scheduleRepo,
		auditDispatcher,
		availCache,
	)

	addOverrideUC := ucSchedule.NewAddOverride(
		scheduleRepo,
		auditDispatcher,
		availCache,
	)

	removeOverrideUC := ucSchedule.NewRemoveOverride(
		scheduleRepo,
		auditDispatcher,
		availCache,
	)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		scheduleRepo,
		auditDispatcher,
		availCache,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		availCache,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
		availCache,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clinicHandler := handlers.NewClinicHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	patientHandler := handlers.NewPatientHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailableSlotsUC)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		addWeeklySlotUC,
		removeWeeklySlotUC,
	)

	overrideHandler := handlers.NewOverrideHandler(
		db,
		addOverrideUC,
		removeOverrideUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		markNoShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		appointmentRepo,
		getAvailableSlotsUC,
		createAppointmentUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (por slug)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.ClinicInfo)
			publicAPI.GET("/:slug/doctors", publicHandler.ListDoctors)
			publicAPI.GET("/:slug/doctors/:doctorId/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/doctors/:doctorId/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/clinic", clinicHandler.GetMeClinic)
			secured.PATCH("/me/clinic",
				middleware.RequireRoles(models.RoleAdmin),
				clinicHandler.UpdateMeClinic)

			secured.GET("/me/patients", patientHandler.List)

			// ------------------------------
			// DOCTORS
			// ------------------------------
			secured.GET("/me/doctors", doctorHandler.List)
			secured.POST("/me/doctors",
				middleware.RequireRoles(models.RoleAdmin),
				doctorHandler.Create)
			secured.PATCH("/me/doctors/:id",
				middleware.RequireRoles(models.RoleAdmin),
				doctorHandler.Update)

			secured.GET("/me/doctors/:id/availability", availabilityHandler.GetForDoctor)

			// ------------------------------
			// AGENDA SEMANAL + EXCEÇÕES
			// ------------------------------
			secured.GET("/me/doctors/:id/schedule", scheduleHandler.List)
			secured.POST("/me/doctors/:id/schedule",
				middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor),
				scheduleHandler.Create)
			secured.DELETE("/me/doctors/:id/schedule/:scheduleId",
				middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor),
				scheduleHandler.Delete)

			secured.GET("/me/doctors/:id/overrides", overrideHandler.List)
			secured.POST("/me/doctors/:id/overrides",
				middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor),
				overrideHandler.Create)
			secured.DELETE("/me/doctors/:id/overrides/:overrideId",
				middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor),
				overrideHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/audit-logs",
				middleware.RequireRoles(models.RoleAdmin),
				auditLogsHandler.List)
		}
	}
}
