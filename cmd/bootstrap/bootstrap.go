package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-records-service/config"
	deliveryHttp "patient-records-service/internal/delivery/http"
	"patient-records-service/internal/delivery/http/handler"
	"patient-records-service/internal/delivery/http/middleware"
	domainRepo "patient-records-service/internal/domain/repository"
	"patient-records-service/internal/infrastructure/database"
	"patient-records-service/internal/repository"
	"patient-records-service/internal/usecase"
	"patient-records-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
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

	log := logrus.StandardLogger()

	// Initialize the patient store. The memory driver keeps everything
	// in-process, which is enough for local development.
	patientRepo, err := app.initPatientRepository(cfg)
	if err != nil {
		return nil, err
	}

	// Seed sample data outside production
	if !cfg.App.IsProduction() {
		if err := repository.Seed(context.Background(), patientRepo, log); err != nil {
			return nil, fmt.Errorf("failed to seed patients: %w", err)
		}
	}

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)

	// Initialize handlers
	customValidator := validator.NewValidator()
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)

	// Initialize middleware
	recoveryMW := middleware.NewRecoveryMiddleware(log, cfg.App.IsProduction())
	requestLoggerMW := middleware.NewRequestLoggerMiddleware(log)
	corsMW := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, recoveryMW, requestLoggerMW, corsMW)
	httpRouter := router.Setup()

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}

	return app, nil
}

func (app *App) initPatientRepository(cfg *config.Config) (domainRepo.PatientRepository, error) {
	if cfg.DB.Driver == "memory" {
		logrus.Info("Using in-memory patient store")
		return repository.NewMemoryPatientRepository(), nil
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	return repository.NewPatientRepository(db), nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
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

// Close closes all connections (database, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
