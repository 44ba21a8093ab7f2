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

	finalizeBookingHandler "github.com/m04kA/KBS-ReservationService/internal/api/handlers/finalize_booking"
	getAvailabilityHandler "github.com/m04kA/KBS-ReservationService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/KBS-ReservationService/internal/api/handlers/get_booking"
	holdActionsHandler "github.com/m04kA/KBS-ReservationService/internal/api/handlers/hold_actions"
	"github.com/m04kA/KBS-ReservationService/internal/api/middleware"
	"github.com/m04kA/KBS-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booking"
	boothRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booth"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
	bookingsService "github.com/m04kA/KBS-ReservationService/internal/service/bookings"
	"github.com/m04kA/KBS-ReservationService/internal/service/sweeper"
	createHoldUC "github.com/m04kA/KBS-ReservationService/internal/usecase/create_hold"
	extendHoldUC "github.com/m04kA/KBS-ReservationService/internal/usecase/extend_hold"
	finalizeBookingUC "github.com/m04kA/KBS-ReservationService/internal/usecase/finalize_booking"
	getAvailabilityUC "github.com/m04kA/KBS-ReservationService/internal/usecase/get_availability"
	releaseHoldUC "github.com/m04kA/KBS-ReservationService/internal/usecase/release_hold"
	"github.com/m04kA/KBS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/KBS-ReservationService/pkg/logger"
	"github.com/m04kA/KBS-ReservationService/pkg/metrics"
	"github.com/m04kA/KBS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/KBS-ReservationService/pkg/txmanager"
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

	log.Info("Starting KBS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		holdRepository    *holdRepo.Repository
		bookingRepository *bookingRepo.Repository
		boothRepository   *boothRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		holdRepository = holdRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		boothRepository = boothRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		holdRepository = holdRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		boothRepository = boothRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createHoldUseCase := createHoldUC.NewUseCase(
		holdRepository,
		bookingRepository,
		boothRepository,
		txMgr,
		log,
	)
	extendHoldUseCase := extendHoldUC.NewUseCase(holdRepository, log)
	releaseHoldUseCase := releaseHoldUC.NewUseCase(holdRepository, log)
	finalizeBookingUseCase := finalizeBookingUC.NewUseCase(
		holdRepository,
		bookingRepository,
		boothRepository,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		boothRepository,
		bookingRepository,
		holdRepository,
		log,
	)

	// Инициализируем handlers
	holdActions := holdActionsHandler.NewHandler(
		createHoldUseCase,
		extendHoldUseCase,
		releaseHoldUseCase,
		log,
	)
	finalizeBooking := finalizeBookingHandler.NewHandler(finalizeBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Действия над холдами: create / extend / release
	api.HandleFunc("/holds", holdActions.Handle).Methods(http.MethodPost)

	// Финализация холда в бронирование
	api.HandleFunc("/bookings/finalize", finalizeBooking.Handle).Methods(http.MethodPost)

	// Доступность кабинок площадки на дату
	api.HandleFunc("/venues/{venue}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Фоновый свипер просроченных холдов
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	if cfg.Sweeper.Enabled {
		holdSweeper := sweeper.New(
			holdRepository,
			time.Duration(cfg.Sweeper.IntervalSeconds)*time.Second,
			log,
		)
		go holdSweeper.Run(sweeperCtx)
	}

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

	stopSweeper()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
