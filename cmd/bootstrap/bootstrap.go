package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-frontdesk/config"
	deliveryHttp "hospital-frontdesk/internal/delivery/http"
	"hospital-frontdesk/internal/delivery/http/handler"
	"hospital-frontdesk/internal/delivery/http/middleware"
	"hospital-frontdesk/internal/infrastructure/cache"
	"hospital-frontdesk/internal/infrastructure/hospitalapi"
	"hospital-frontdesk/internal/infrastructure/metrics"
	"hospital-frontdesk/internal/repository"
	"hospital-frontdesk/internal/usecase"
	"hospital-frontdesk/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
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

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize logger and metrics
	log := logrus.StandardLogger()
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize hospital API client
	apiClient := hospitalapi.NewClient(
		cfg.HospitalAPI.BaseURL,
		hospitalapi.WithHTTPClient(&http.Client{Timeout: cfg.HospitalAPI.Timeout}),
		hospitalapi.WithLogger(log),
		hospitalapi.WithMetrics(m),
	)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(apiClient)
	doctorRepo := repository.NewDoctorRepository(apiClient)
	departmentRepo := repository.NewDepartmentRepository(apiClient)
	appointmentRepo := repository.NewAppointmentRepository(apiClient)
	sessionRepo := repository.NewBookingSessionRepository(redisClient, cfg.Booking.SessionTTL)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	directoryUsecase := usecase.NewDirectoryUsecase(log, doctorRepo, departmentRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, doctorRepo)
	bookingUsecase := usecase.NewBookingUsecase(log, sessionRepo, patientRepo, doctorRepo, appointmentRepo, m)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, bookingUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, availabilityUsecase, customValidator)
	departmentHandler := handler.NewDepartmentHandler(directoryUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, doctorHandler, departmentHandler, bookingHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
