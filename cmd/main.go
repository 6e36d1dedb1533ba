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
	"github.com/redis/go-redis/v9"

	acceptBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/accept_booking"
	completeBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/confirm_booking"
	eligibleStaffHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/eligible_staff"
	getActiveDiscountHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_active_discount"
	getBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_catalog"
	getInvoiceHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_invoice"
	getProviderBookingsHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_provider_bookings"
	getQueueStatsHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/get_queue_stats"
	quoteBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/quote_booking"
	rejectBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/reject_booking"
	sendInvoiceHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/send_invoice"
	transitionBookingHandler "github.com/m04kA/SMP-FulfilmentService/internal/api/handlers/transition_booking"
	"github.com/m04kA/SMP-FulfilmentService/internal/api/middleware"
	"github.com/m04kA/SMP-FulfilmentService/internal/config"
	bookingRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/catalog"
	discountRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/discount"
	dispatchRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/dispatch"
	staffRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/staff"
	notifyServiceClient "github.com/m04kA/SMP-FulfilmentService/internal/integrations/notifyservice"
	bookingsService "github.com/m04kA/SMP-FulfilmentService/internal/service/bookings"
	catalogService "github.com/m04kA/SMP-FulfilmentService/internal/service/catalog"
	invoicesService "github.com/m04kA/SMP-FulfilmentService/internal/service/invoices"
	queuestatsService "github.com/m04kA/SMP-FulfilmentService/internal/service/queuestats"
	confirmBookingUC "github.com/m04kA/SMP-FulfilmentService/internal/usecase/confirm_booking"
	eligibleStaffUC "github.com/m04kA/SMP-FulfilmentService/internal/usecase/eligible_staff"
	quoteBookingUC "github.com/m04kA/SMP-FulfilmentService/internal/usecase/quote_booking"
	"github.com/m04kA/SMP-FulfilmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-FulfilmentService/pkg/logger"
	"github.com/m04kA/SMP-FulfilmentService/pkg/metrics"
	"github.com/m04kA/SMP-FulfilmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMP-FulfilmentService/pkg/txmanager"
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

	log.Info("Starting SMP-FulfilmentService...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к Redis (реестр отправленных инвойсов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционного клиента
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (NotifyService=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		catalogRepository  *catalogRepo.Repository
		staffRepository    *staffRepo.Repository
		discountRepository *discountRepo.Repository
	)

	type txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr txManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	dispatchRepository := dispatchRepo.NewRepository(redisClient)

	// Агрегатор статистики очередей
	statsAggregator := queuestatsService.NewAggregator()

	// Метрики бизнес-событий пробрасываются только при включённых метриках,
	// иначе в интерфейсе окажется типизированный nil
	var transitionRecorder bookingsService.TransitionRecorder
	var invoiceRecorder invoicesService.SendRecorder
	if cfg.Metrics.Enabled {
		transitionRecorder = metricsCollector
		invoiceRecorder = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, statsAggregator, transitionRecorder, log)
	catalogSvc := catalogService.NewService(catalogRepository, discountRepository, log)
	statsSvc := queuestatsService.NewService(statsAggregator, bookingRepository, log)
	invoiceSvc := invoicesService.NewService(bookingRepository, dispatchRepository, notifyClient, invoiceRecorder, log)

	// Прогреваем реестр отправленных инвойсов
	if err := invoiceSvc.Load(context.Background()); err != nil {
		log.Fatal("Failed to load invoice dispatch record: %v", err)
	}

	// Инициализируем use cases
	quoteUseCase := quoteBookingUC.NewUseCase(
		catalogRepository,
		discountRepository,
		cfg.Pricing.TaxRatePercent,
		log,
	)
	eligibleStaffUseCase := eligibleStaffUC.NewUseCase(
		catalogRepository,
		staffRepository,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		staffRepository,
		discountRepository,
		statsAggregator,
		txMgr,
		cfg.Pricing.TaxRatePercent,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getActiveDiscount := getActiveDiscountHandler.NewHandler(catalogSvc, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteUseCase, log)
	eligibleStaff := eligibleStaffHandler.NewHandler(eligibleStaffUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	acceptBooking := acceptBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	sendInvoice := sendInvoiceHandler.NewHandler(invoiceSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(invoiceSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	getQueueStats := getQueueStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина: каталог услуг и активная скидка
	api.HandleFunc("/providers/{providerId}/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/discount", getActiveDiscount.Handle).Methods(http.MethodGet)

	// Расчёт стоимости текущего выбора
	api.HandleFunc("/providers/{providerId}/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// Подбор подходящих сотрудников
	api.HandleFunc("/providers/{providerId}/staff/eligible", eligibleStaff.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Подтверждение бронирования клиентом
	protected.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Жизненный цикл со стороны провайдера
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPatch)

	// Инвойсы по завершённым бронированиям
	protected.HandleFunc("/bookings/{bookingId}/invoice", sendInvoice.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/invoice", getInvoice.Handle).Methods(http.MethodGet)

	// --- Очередь провайдера ---
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/stats", getQueueStats.Handle).Methods(http.MethodGet)

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
