package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medtrack-api/internal/config"
	"medtrack-api/internal/handler"
	"medtrack-api/internal/metrics"
	"medtrack-api/internal/middleware"
	"medtrack-api/internal/repository"
	"medtrack-api/internal/service"
)

// Setup wires repositories, services, handlers and middleware into a gin
// engine
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS([]string{"http://localhost:5173", "http://localhost:3000"}))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Repositories
	medicationRepo := repository.NewMedicationRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	examRepo := repository.NewExamRepository(db)
	eventLogRepo := repository.NewEventLogRepository(db)
	txManager := repository.NewTxManager(db)

	// Services
	eventLogService := service.NewEventLogService(eventLogRepo, logger)
	statsService := service.NewStatsService(
		medicationRepo, consultationRepo, examRepo,
		redisClient, time.Duration(cfg.Redis.StatsTTL)*time.Second, logger,
	)
	medicationService := service.NewMedicationService(medicationRepo, eventLogService, txManager, statsService, m, logger)
	consultationService := service.NewConsultationService(consultationRepo, eventLogService, txManager, statsService, m, logger)
	examService := service.NewExamService(examRepo, eventLogService, txManager, statsService, m, logger)

	// Handlers
	medicationHandler := handler.NewMedicationHandler(medicationService)
	consultationHandler := handler.NewConsultationHandler(consultationService)
	examHandler := handler.NewExamHandler(examService)
	eventLogHandler := handler.NewEventLogHandler(eventLogService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes (require auth)
	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWT.Secret))
	{
		medications := api.Group("/medications")
		{
			medications.GET("", medicationHandler.GetMedications)
			medications.POST("", medicationHandler.CreateMedication)
			medications.PUT("/:id", medicationHandler.UpdateMedication)
			medications.DELETE("/:id", medicationHandler.DeleteMedication)
			medications.PATCH("/:id/complete", medicationHandler.ToggleComplete)
		}

		consultations := api.Group("/consultations")
		{
			consultations.GET("", consultationHandler.GetConsultations)
			consultations.POST("", consultationHandler.CreateConsultation)
			consultations.PUT("/:id", consultationHandler.UpdateConsultation)
			consultations.DELETE("/:id", consultationHandler.DeleteConsultation)
			consultations.PATCH("/:id/complete", consultationHandler.ToggleComplete)
		}

		exams := api.Group("/exams")
		{
			exams.GET("", examHandler.GetExams)
			exams.POST("", examHandler.CreateExam)
			exams.PUT("/:id", examHandler.UpdateExam)
			exams.DELETE("/:id", examHandler.DeleteExam)
			exams.PATCH("/:id/complete", examHandler.ToggleComplete)
		}

		api.GET("/history", eventLogHandler.GetHistory)
		api.GET("/stats", statsHandler.GetStats)
	}

	return r
}
