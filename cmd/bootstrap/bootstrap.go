package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sillah/config"
	deliveryHttp "sillah/internal/delivery/http"
	"sillah/internal/delivery/http/handler"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/infrastructure/cache"
	"sillah/internal/infrastructure/database"
	"sillah/internal/repository"
	"sillah/internal/service"
	"sillah/internal/usecase"
	"sillah/pkg/jwt"
	"sillah/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	ScheduleSync *service.ScheduleSyncService
	Server       *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the GORM connection pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, scheduleSync := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.ScheduleSync = scheduleSync

	// Mirror schedule quotas into Redis before accepting traffic
	syncCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := scheduleSync.SyncOnStartup(syncCtx); err != nil {
		logrus.Warnf("Redis startup sync failed (continuing): %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.ScheduleSyncService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	familyMemberRepo := repository.NewFamilyMemberRepository()
	healthRecordRepo := repository.NewHealthRecordRepository()
	alertRepo := repository.NewAlertRepository()
	medicationRepo := repository.NewMedicationRepository()
	doctorPatientRepo := repository.NewDoctorPatientRepository()
	doctorScheduleRepo := repository.NewDoctorScheduleRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	scheduleSync := service.NewScheduleSyncService(db, redisClient, log)

	// Initialize usecases
	alertUsecase := usecase.NewAlertUsecase(db, log, alertRepo, familyMemberRepo, healthRecordRepo, auditService)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, patientProfileRepo, jwtService, redisClient, auditService, alertUsecase)
	familyMemberUsecase := usecase.NewFamilyMemberUsecase(db, log, familyMemberRepo, auditService, alertUsecase)
	healthRecordUsecase := usecase.NewHealthRecordUsecase(db, log, healthRecordRepo, auditService, alertUsecase)
	riskAssessmentUsecase := usecase.NewRiskAssessmentUsecase(db, log, familyMemberRepo, doctorPatientRepo)
	medicationUsecase := usecase.NewMedicationUsecase(db, log, medicationRepo, doctorPatientRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorScheduleRepo, scheduleSync, auditService)
	doctorScheduleUsecase := usecase.NewDoctorScheduleUsecase(db, log, doctorScheduleRepo, doctorProfileRepo, scheduleSync, auditService)
	doctorPatientUsecase := usecase.NewDoctorPatientUsecase(db, log, doctorPatientRepo, doctorProfileRepo, patientProfileRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	familyMemberHandler := handler.NewFamilyMemberHandler(familyMemberUsecase, customValidator)
	healthRecordHandler := handler.NewHealthRecordHandler(healthRecordUsecase, customValidator)
	riskAssessmentHandler := handler.NewRiskAssessmentHandler(riskAssessmentUsecase)
	alertHandler := handler.NewAlertHandler(alertUsecase)
	medicationHandler := handler.NewMedicationHandler(medicationUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	doctorScheduleHandler := handler.NewDoctorScheduleHandler(doctorScheduleUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorPatientUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		familyMemberHandler,
		healthRecordHandler,
		riskAssessmentHandler,
		alertHandler,
		medicationHandler,
		appointmentHandler,
		doctorScheduleHandler,
		doctorHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, scheduleSync
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop background sync workers first
	if app.ScheduleSync != nil {
		app.ScheduleSync.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
