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

	blockTimeRangeHandler "github.com/glossbook/scheduling-service/internal/api/handlers/block_time_range"
	cancelBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/create_booking"
	deleteBlockedRangeHandler "github.com/glossbook/scheduling-service/internal/api/handlers/delete_blocked_range"
	getAvailableSlotsHandler "github.com/glossbook/scheduling-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/get_booking"
	getScheduleTemplateHandler "github.com/glossbook/scheduling-service/internal/api/handlers/get_schedule_template"
	getUserBookingsHandler "github.com/glossbook/scheduling-service/internal/api/handlers/get_user_bookings"
	listBlockedRangesHandler "github.com/glossbook/scheduling-service/internal/api/handlers/list_blocked_ranges"
	listServicesHandler "github.com/glossbook/scheduling-service/internal/api/handlers/list_services"
	rescheduleBookingHandler "github.com/glossbook/scheduling-service/internal/api/handlers/reschedule_booking"
	updateScheduleTemplateHandler "github.com/glossbook/scheduling-service/internal/api/handlers/update_schedule_template"
	"github.com/glossbook/scheduling-service/internal/api/middleware"
	"github.com/glossbook/scheduling-service/internal/config"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	availabilityWindowRepo "github.com/glossbook/scheduling-service/internal/infra/storage/availabilitywindow"
	blockedRangeRepo "github.com/glossbook/scheduling-service/internal/infra/storage/blockedrange"
	bookingRepo "github.com/glossbook/scheduling-service/internal/infra/storage/booking"
	serviceRepo "github.com/glossbook/scheduling-service/internal/infra/storage/service"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
	blockedRangesService "github.com/glossbook/scheduling-service/internal/service/blockedranges"
	bookingsService "github.com/glossbook/scheduling-service/internal/service/bookings"
	catalogService "github.com/glossbook/scheduling-service/internal/service/catalog"
	scheduleService "github.com/glossbook/scheduling-service/internal/service/schedule"
	blockTimeRangeUC "github.com/glossbook/scheduling-service/internal/usecase/block_time_range"
	createBookingUC "github.com/glossbook/scheduling-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/glossbook/scheduling-service/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/glossbook/scheduling-service/internal/usecase/reschedule_booking"
	"github.com/glossbook/scheduling-service/pkg/dbmetrics"
	"github.com/glossbook/scheduling-service/pkg/logger"
	"github.com/glossbook/scheduling-service/pkg/metrics"
	"github.com/glossbook/scheduling-service/pkg/simpletxmanager"
	"github.com/glossbook/scheduling-service/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
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

	// Клиент сервиса уведомлений
	notifierClient := notifier.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Лента изменений расписания (redis pub/sub, опциональна)
	var publisher interface {
		Publish(ctx context.Context, event events.ChangeEvent)
	}
	if cfg.Events.Enabled {
		redisPublisher := events.NewPublisher(
			cfg.Events.RedisAddr,
			cfg.Events.RedisPassword,
			cfg.Events.RedisDB,
			cfg.Events.Channel,
			log,
		)
		defer redisPublisher.Close()
		publisher = redisPublisher
		log.Info("Change feed publisher connected to redis at %s (channel=%s)",
			cfg.Events.RedisAddr, cfg.Events.Channel)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Change feed disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		windowRepository       *availabilityWindowRepo.Repository
		blockedRangeRepository *blockedRangeRepo.Repository
		serviceRepository      *serviceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		windowRepository = availabilityWindowRepo.NewRepository(wrappedDB)
		blockedRangeRepository = blockedRangeRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		windowRepository = availabilityWindowRepo.NewRepository(db)
		blockedRangeRepository = blockedRangeRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, notifierClient, publisher, log)
	scheduleSvc := scheduleService.NewService(windowRepository, txMgr, log)
	blockedRangesSvc := blockedRangesService.NewService(blockedRangeRepository, publisher, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		windowRepository,
		blockedRangeRepository,
		serviceRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		windowRepository,
		blockedRangeRepository,
		serviceRepository,
		txMgr,
		notifierClient,
		publisher,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		windowRepository,
		blockedRangeRepository,
		txMgr,
		notifierClient,
		publisher,
		log,
	)

	blockTimeRangeUseCase := blockTimeRangeUC.NewUseCase(
		blockedRangeRepository,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	blockTimeRange := blockTimeRangeHandler.NewHandler(blockTimeRangeUseCase, log)
	listBlockedRanges := listBlockedRangesHandler.NewHandler(blockedRangesSvc, log)
	deleteBlockedRange := deleteBlockedRangeHandler.NewHandler(blockedRangesSvc, log)
	getScheduleTemplate := getScheduleTemplateHandler.NewHandler(scheduleSvc, log)
	updateScheduleTemplate := updateScheduleTemplateHandler.NewHandler(scheduleSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты услуги на дату
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос записи
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (закрываются на уровне gateway)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// Подтверждение и завершение записей
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Блокировки времени
	admin.HandleFunc("/blocked-ranges", blockTimeRange.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-ranges", listBlockedRanges.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-ranges/{rangeId}", deleteBlockedRange.Handle).Methods(http.MethodDelete)

	// Еженедельный шаблон доступности
	admin.HandleFunc("/schedule-template", getScheduleTemplate.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule-template", updateScheduleTemplate.Handle).Methods(http.MethodPut)

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
