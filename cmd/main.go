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

	confirmBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/create_booking"
	createManualBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/create_manual_booking"
	deleteBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/avanturapark/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/avanturapark/booking-service/internal/api/handlers/list_bookings"
	listPackagesHandler "github.com/avanturapark/booking-service/internal/api/handlers/list_packages"
	manageBlockedDaysHandler "github.com/avanturapark/booking-service/internal/api/handlers/manage_blocked_days"
	manageExtrasHandler "github.com/avanturapark/booking-service/internal/api/handlers/manage_extras"
	managePackagesHandler "github.com/avanturapark/booking-service/internal/api/handlers/manage_packages"
	rejectBookingHandler "github.com/avanturapark/booking-service/internal/api/handlers/reject_booking"
	updateBookingStatusHandler "github.com/avanturapark/booking-service/internal/api/handlers/update_booking_status"
	"github.com/avanturapark/booking-service/internal/api/middleware"
	"github.com/avanturapark/booking-service/internal/config"
	blockedDayRepo "github.com/avanturapark/booking-service/internal/infra/storage/blockedday"
	bookingRepo "github.com/avanturapark/booking-service/internal/infra/storage/booking"
	extraRepo "github.com/avanturapark/booking-service/internal/infra/storage/extras"
	packageRepo "github.com/avanturapark/booking-service/internal/infra/storage/packages"
	calendarClient "github.com/avanturapark/booking-service/internal/integrations/calendar"
	"github.com/avanturapark/booking-service/internal/integrations/mailer"
	blockedDaysService "github.com/avanturapark/booking-service/internal/service/blockeddays"
	bookingsService "github.com/avanturapark/booking-service/internal/service/bookings"
	catalogService "github.com/avanturapark/booking-service/internal/service/catalog"
	notifierService "github.com/avanturapark/booking-service/internal/service/notifier"
	"github.com/avanturapark/booking-service/internal/sideeffects"
	createBookingUC "github.com/avanturapark/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avanturapark/booking-service/internal/usecase/get_available_slots"
	"github.com/avanturapark/booking-service/pkg/dbmetrics"
	"github.com/avanturapark/booking-service/pkg/logger"
	"github.com/avanturapark/booking-service/pkg/metrics"
	"github.com/avanturapark/booking-service/pkg/simpletxmanager"
	"github.com/avanturapark/booking-service/pkg/txmanager"
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

	log.Info("Starting Avantura Park booking service...")
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

	// Инициализируем интеграции
	calClient := calendarClient.NewClient(
		cfg.Calendar.URL,
		cfg.Calendar.Enabled,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	mail := mailer.New(
		cfg.SMTP.Enabled,
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.From,
		cfg.SMTP.Password,
		cfg.SMTP.StaffEmail,
		log,
	)
	log.Info("Integrations initialized (calendar enabled=%v, mail enabled=%v)",
		cfg.Calendar.Enabled, cfg.SMTP.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		packageRepository    *packageRepo.Repository
		extraRepository      *extraRepo.Repository
		blockedDayRepository *blockedDayRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		packageRepository = packageRepo.NewRepository(wrappedDB)
		extraRepository = extraRepo.NewRepository(wrappedDB)
		blockedDayRepository = blockedDayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		packageRepository = packageRepo.NewRepository(db)
		extraRepository = extraRepo.NewRepository(db)
		blockedDayRepository = blockedDayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Фоновый диспетчер побочных эффектов (почта, календарь)
	var metricsRecorder sideeffects.MetricsRecorder
	if cfg.Metrics.Enabled {
		metricsRecorder = metricsCollector
	}
	dispatcher := sideeffects.NewDispatcher(cfg.SideEffects.QueueSize, cfg.SideEffects.MaxRetries, log, metricsRecorder)
	dispatcher.Start()
	log.Info("Side effect dispatcher started (queue=%d, retries=%d)",
		cfg.SideEffects.QueueSize, cfg.SideEffects.MaxRetries)

	notifier := notifierService.New(dispatcher, mail, calClient, bookingRepository, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	catalogSvc := catalogService.NewService(packageRepository, extraRepository, log)
	blockedDaysSvc := blockedDaysService.NewService(blockedDayRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		extraRepository,
		blockedDayRepository,
		txMgr,
		notifier,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		packageRepository,
		blockedDayRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createManualBooking := createManualBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listPackages := listPackagesHandler.NewHandler(catalogSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	managePackages := managePackagesHandler.NewHandler(catalogSvc, log)
	manageExtras := manageExtrasHandler.NewHandler(catalogSvc, log)
	manageBlockedDays := manageBlockedDaysHandler.NewHandler(blockedDaysSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования на сайте)
	// ============================================================

	// Пакеты, предлагаемые в дату (или все активные)
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)

	// Активные дополнительные услуги
	api.HandleFunc("/extras", listPackages.HandleExtras).Methods(http.MethodGet)

	// Слоты с остатком мест
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Закрытые дни (календарь формы прячет их)
	api.HandleFunc("/blocked-days", manageBlockedDays.HandleList).Methods(http.MethodGet)

	// Создание заявки на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", createManualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог: пакеты ---
	admin.HandleFunc("/packages", managePackages.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/packages", managePackages.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/packages/{packageId}", managePackages.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/packages/{packageId}", managePackages.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/packages/{packageId}", managePackages.HandleDelete).Methods(http.MethodDelete)

	// --- Каталог: дополнительные услуги ---
	admin.HandleFunc("/extras", manageExtras.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/extras", manageExtras.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/extras/{extraId}", manageExtras.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/extras/{extraId}", manageExtras.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/extras/{extraId}", manageExtras.HandleDelete).Methods(http.MethodDelete)

	// --- Закрытые дни ---
	admin.HandleFunc("/blocked-days", manageBlockedDays.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-days/{blockedDayId}", manageBlockedDays.HandleDelete).Methods(http.MethodDelete)

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

	// Дожидаемся доставки оставшихся писем и событий календаря
	dispatcher.Stop()
	log.Info("Side effect dispatcher drained")

	log.Info("Server stopped gracefully")
}
