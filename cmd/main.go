package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hmax24/beauty-salon/internal/api/handlers"
	createAppointmentHandler "github.com/hmax24/beauty-salon/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/hmax24/beauty-salon/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/hmax24/beauty-salon/internal/api/handlers/get_catalog"
	"github.com/hmax24/beauty-salon/internal/api/middleware"
	"github.com/hmax24/beauty-salon/internal/config"
	appointmentRepo "github.com/hmax24/beauty-salon/internal/infra/storage/appointment"
	catalogRepo "github.com/hmax24/beauty-salon/internal/infra/storage/catalog"
	scheduleRepo "github.com/hmax24/beauty-salon/internal/infra/storage/schedule"
	catalogService "github.com/hmax24/beauty-salon/internal/service/catalog"
	scheduleService "github.com/hmax24/beauty-salon/internal/service/schedule"
	createAppointmentUC "github.com/hmax24/beauty-salon/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/hmax24/beauty-salon/internal/usecase/get_available_slots"
	"github.com/hmax24/beauty-salon/pkg/dbmetrics"
	"github.com/hmax24/beauty-salon/pkg/logger"
	"github.com/hmax24/beauty-salon/pkg/metrics"
)

const healthCheckTimeout = 2 * time.Second

// pinger *sql.DB или *dbmetrics.DB
type pinger interface {
	PingContext(ctx context.Context) error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting beauty-salon service...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через обёртку метрик, если метрики включены
	var (
		executor dbmetrics.DBExecutor = db
		health   pinger               = db
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor, health = wrappedDB, wrappedDB
		log.Info("Database metrics collection started")
	}

	catalogRepository := catalogRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	var outcomes createAppointmentUC.OutcomeRecorder = createAppointmentUC.NopRecorder{}
	if cfg.Metrics.Enabled {
		outcomes = metricsCollector
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogSvc,
		scheduleSvc,
		appointmentRepository,
		outcomes,
		cfg.Salon.Locales,
		cfg.Salon.MaxCommentLength,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		scheduleSvc,
		appointmentRepository,
		cfg.Salon.Locales,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, cfg.Salon.DefaultLocale, cfg.Salon.Locales, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, cfg.Salon.DefaultLocale, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, cfg.Salon.DefaultLocale, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthHandler(health, log)).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог услуг и офферов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Запись клиента (с ограничением частоты)
	booking := api.PathPrefix("/appointments").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
		booking.Use(limiter.Middleware())
		log.Info("Rate limit on appointments: rps=%.2f, burst=%d, trust_proxy=%t",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}
	booking.HandleFunc("", createAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func healthHandler(db pinger, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error("GET /healthz - Database unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, handlers.KindInternal, "", "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
