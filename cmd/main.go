package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/admin"
	catalogHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/catalog"
	filtersHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/filters"
	loginHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/login"
	searchBikesHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/search_bikes"
	searchStateHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/search_state"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/config"
	sessionRepo "github.com/m04kA/SMC-BikeRental/internal/infra/storage/session"
	"github.com/m04kA/SMC-BikeRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-BikeRental/internal/scheduler"
	"github.com/m04kA/SMC-BikeRental/internal/service/reconciler"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	changePackageUC "github.com/m04kA/SMC-BikeRental/internal/usecase/change_package"
	loginUC "github.com/m04kA/SMC-BikeRental/internal/usecase/login"
	searchBikesUC "github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
	"github.com/m04kA/SMC-BikeRental/pkg/dbmetrics"
	"github.com/m04kA/SMC-BikeRental/pkg/logger"
	"github.com/m04kA/SMC-BikeRental/pkg/metrics"
	"github.com/m04kA/SMC-BikeRental/pkg/validation"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-BikeRental...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Sessions.Location()
	if err != nil {
		log.Fatal("Invalid sessions timezone %q: %v", cfg.Sessions.Timezone, err)
	}

	// Инициализируем метрики (если включены).
	// Интерфейсы остаются nil, если метрики выключены
	var (
		metricsCollector *metrics.Metrics
		sessionMetrics   sessions.MetricsCollector
		upstreamMetrics  rentalapi.MetricsCollector
		searchMetrics    searchBikesUC.MetricsCollector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		sessionMetrics = metricsCollector
		upstreamMetrics = metricsCollector
		searchMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище снимков сессий
	var repository sessions.SessionRepository
	switch cfg.Sessions.Storage {
	case config.StoragePostgres:
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

		if cfg.Metrics.Enabled {
			repository = sessionRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			repository = sessionRepo.NewRepository(db)
		}
	default:
		repository = sessionRepo.NewMemoryRepository()
		log.Warn("Session snapshots are kept in memory and will be lost on restart")
	}

	// Реестр сессий посетителей
	registry := sessions.NewRegistry(
		repository,
		&reconciler.RealTimeProvider{},
		loc,
		cfg.Sessions.TTL(),
		sessionMetrics,
		log,
	)

	// Клиент API проката
	rentalClient := rentalapi.NewClient(
		cfg.RentalAPI.URL,
		time.Duration(cfg.RentalAPI.Timeout)*time.Second,
		upstreamMetrics,
		log,
	)
	log.Info("Rental API client initialized (url=%s, timeout=%ds)", cfg.RentalAPI.URL, cfg.RentalAPI.Timeout)

	validator := validation.New()

	// Инициализируем use cases
	searchBikesUseCase := searchBikesUC.NewUseCase(rentalClient, cfg.RentalAPI.ImageBaseURL, searchMetrics, log)
	changePackageUseCase := changePackageUC.NewUseCase(registry, searchBikesUseCase, log)
	loginUseCase := loginUC.NewUseCase(registry, rentalClient, validator, log)

	// Инициализируем handlers
	searchState := searchStateHandler.NewHandler(registry, loc, log)
	filters := filtersHandler.NewHandler(registry, changePackageUseCase, log)
	searchBikes := searchBikesHandler.NewHandler(registry, searchBikesUseCase, log)
	login := loginHandler.NewHandler(loginUseCase, loginHandler.TokenCookieConfig{
		Name:   cfg.Auth.TokenCookie,
		MaxAge: time.Duration(cfg.Auth.TokenMaxAgeDays) * 24 * time.Hour,
		Secure: cfg.Auth.CookieSecure,
	}, log)
	catalog := catalogHandler.NewHandler(rentalClient, cfg.RentalAPI.ImageBaseURL, log)
	admin := adminHandler.NewHandler(rentalClient, validator, log)

	// Планировщик очистки сессий
	sched, err := scheduler.NewScheduler(registry, cfg.Sessions.SweepSchedule, loc, log)
	if err != nil {
		log.Fatal("Failed to create scheduler: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CATALOG ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/cities", catalog.Cities).Methods(http.MethodGet)
	api.HandleFunc("/cities/{name}/areas", catalog.Areas).Methods(http.MethodGet)
	api.HandleFunc("/offers", catalog.Offers).Methods(http.MethodGet)
	api.HandleFunc("/offers/{id:[0-9]+}", catalog.Offer).Methods(http.MethodGet)
	api.HandleFunc("/services", catalog.Services).Methods(http.MethodGet)
	api.HandleFunc("/bikes/{id:[0-9]+}", catalog.Bike).Methods(http.MethodGet)

	// --- Администрирование (права проверяет API проката) ---
	api.HandleFunc("/admin/bikes", admin.ListBikes).Methods(http.MethodGet)
	api.HandleFunc("/admin/bikes", admin.CreateBike).Methods(http.MethodPost)
	api.HandleFunc("/admin/bikes/{id}", admin.UpdateBike).Methods(http.MethodPut)
	api.HandleFunc("/admin/bikes/{id}", admin.DeleteBike).Methods(http.MethodDelete)
	api.HandleFunc("/admin/cities", admin.CreateCity).Methods(http.MethodPost)
	api.HandleFunc("/admin/cities/{id}", admin.UpdateCity).Methods(http.MethodPut)
	api.HandleFunc("/admin/cities/{id}", admin.DeleteCity).Methods(http.MethodDelete)
	api.HandleFunc("/admin/areas", admin.ListAreas).Methods(http.MethodGet)
	api.HandleFunc("/admin/areas", admin.CreateArea).Methods(http.MethodPost)
	api.HandleFunc("/admin/areas/{id}", admin.DeleteArea).Methods(http.MethodDelete)
	api.HandleFunc("/admin/offers", admin.CreateOffer).Methods(http.MethodPost)
	api.HandleFunc("/admin/offers/{id}", admin.UpdateOffer).Methods(http.MethodPut)
	api.HandleFunc("/admin/offers/{id}", admin.DeleteOffer).Methods(http.MethodDelete)

	// ============================================================
	// SESSION ROUTES (cookie sid)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session(middleware.SessionConfig{
		CookieName: cfg.Sessions.CookieName,
		TTL:        cfg.Sessions.TTL(),
		Secure:     cfg.Auth.CookieSecure,
	}))

	// --- Форма поиска ---
	session.HandleFunc("/search", searchState.Get).Methods(http.MethodGet)
	session.HandleFunc("/search/city", searchState.UpdateCity).Methods(http.MethodPut)
	session.HandleFunc("/search/pickup", searchState.UpdatePickup).Methods(http.MethodPatch)
	session.HandleFunc("/search/dropoff", searchState.UpdateDropoff).Methods(http.MethodPatch)
	session.HandleFunc("/search/slots", searchState.Slots).Methods(http.MethodGet)
	session.HandleFunc("/search/calendar", searchState.Calendar).Methods(http.MethodGet)

	// --- Фильтры ---
	session.HandleFunc("/filters", filters.Get).Methods(http.MethodGet)
	session.HandleFunc("/filters/package", filters.ChangePackage).Methods(http.MethodPut)
	session.HandleFunc("/filters/{category}/toggle", filters.Toggle).Methods(http.MethodPost)

	// --- Выдача ---
	session.HandleFunc("/bikes/search", searchBikes.Handle).Methods(http.MethodGet)

	// --- Вход ---
	session.HandleFunc("/auth", login.State).Methods(http.MethodGet)
	session.HandleFunc("/auth/send-otp", login.SendOTP).Methods(http.MethodPost)
	session.HandleFunc("/auth/verify-otp", login.VerifyOTP).Methods(http.MethodPost)
	session.HandleFunc("/auth/profile", login.CompleteProfile).Methods(http.MethodPost)
	session.HandleFunc("/auth/logout", login.Logout).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	sched.Start()

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	sched.Stop()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
