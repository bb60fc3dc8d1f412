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

	addWindowHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/add_window"
	assignSlotHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/assign_slot"
	cancelAppointmentHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/cancel_appointment"
	createEventHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/create_event"
	deleteEventHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/delete_event"
	deleteSlotHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/delete_slot"
	deleteWindowHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/delete_window"
	generateSlotsHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/generate_slots"
	getEligibleApplicantsHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/get_eligible_applicants"
	getEventHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/get_event"
	listEventsHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/list_events"
	listRegistrationsHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/list_registrations"
	listSlotsHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/list_slots"
	markAttendanceHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/mark_attendance"
	registerAttendeeHandler "github.com/m04kA/ADM-SchedulingService/internal/api/handlers/register_attendee"
	"github.com/m04kA/ADM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/ADM-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	registrationRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/registration"
	slotRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/slot"
	windowRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/window"
	admissionsClient "github.com/m04kA/ADM-SchedulingService/internal/integrations/admissions"
	eventsService "github.com/m04kA/ADM-SchedulingService/internal/service/events"
	registrationsService "github.com/m04kA/ADM-SchedulingService/internal/service/registrations"
	scheduleService "github.com/m04kA/ADM-SchedulingService/internal/service/schedule"
	assignSlotUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/assign_slot"
	cancelAppointmentUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/cancel_appointment"
	deleteEventUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_event"
	deleteSlotUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_slot"
	deleteWindowUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_window"
	generateSlotsUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/generate_slots"
	registerAttendeeUC "github.com/m04kA/ADM-SchedulingService/internal/usecase/register_attendee"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/logger"
	"github.com/m04kA/ADM-SchedulingService/pkg/metrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/ADM-SchedulingService/pkg/txmanager"
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

	log.Info("Starting ADM-SchedulingService...")
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

	// Инициализируем клиента сервиса приема
	admissions := admissionsClient.NewClient(
		cfg.AdmissionsService.URL,
		time.Duration(cfg.AdmissionsService.Timeout)*time.Second,
		log,
	)
	log.Info("Admissions client initialized (url=%s, timeout=%ds)",
		cfg.AdmissionsService.URL, cfg.AdmissionsService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository        *eventRepo.Repository
		windowRepository       *windowRepo.Repository
		slotRepository         *slotRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		registrationRepository *registrationRepo.Repository
	)

	// Интерфейс transaction manager, общий для обоих вариантов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		windowRepository = windowRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		registrationRepository = registrationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		windowRepository = windowRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		registrationRepository = registrationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventsSvc := eventsService.NewService(eventRepository, windowRepository, log)
	scheduleSvc := scheduleService.NewService(eventRepository, windowRepository, slotRepository, log)
	registrationsSvc := registrationsService.NewService(eventRepository, registrationRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(windowRepository, slotRepository, txMgr, log)
	assignSlotUseCase := assignSlotUC.NewUseCase(
		eventRepository,
		windowRepository,
		slotRepository,
		appointmentRepository,
		admissions,
		txMgr,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentRepository, slotRepository, txMgr, log)
	deleteEventUseCase := deleteEventUC.NewUseCase(
		eventRepository,
		windowRepository,
		slotRepository,
		appointmentRepository,
		registrationRepository,
		txMgr,
		log,
	)
	deleteWindowUseCase := deleteWindowUC.NewUseCase(
		windowRepository,
		slotRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	deleteSlotUseCase := deleteSlotUC.NewUseCase(slotRepository, appointmentRepository, admissions, txMgr, log)
	registerAttendeeUseCase := registerAttendeeUC.NewUseCase(eventRepository, registrationRepository, txMgr, log)

	// Инициализируем handlers
	createEvent := createEventHandler.NewHandler(eventsSvc, log)
	getEvent := getEventHandler.NewHandler(eventsSvc, log)
	listEvents := listEventsHandler.NewHandler(eventsSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(deleteEventUseCase, log)
	addWindow := addWindowHandler.NewHandler(scheduleSvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(deleteWindowUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	listSlots := listSlotsHandler.NewHandler(scheduleSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(deleteSlotUseCase, log)
	assignSlot := assignSlotHandler.NewHandler(assignSlotUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	registerAttendee := registerAttendeeHandler.NewHandler(registerAttendeeUseCase, log)
	markAttendance := markAttendanceHandler.NewHandler(registrationsSvc, log)
	listRegistrations := listRegistrationsHandler.NewHandler(registrationsSvc, log)
	getEligibleApplicants := getEligibleApplicantsHandler.NewHandler(admissions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список событий
	api.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)

	// Карточка события
	api.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)

	// Слоты события
	api.HandleFunc("/events/{eventId}/slots", listSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- События ---
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

	// --- Окна и слоты ---
	protected.HandleFunc("/events/{eventId}/windows", addWindow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/events/windows/{windowId}/slots", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Записи на собеседование ---
	protected.HandleFunc("/events/{eventId}/slots/{slotId}/assign", assignSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Регистрации и посещаемость ---
	protected.HandleFunc("/events/{eventId}/register", registerAttendee.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}/attendance", markAttendance.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/events/{eventId}/registrations", listRegistrations.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	protected.HandleFunc("/eligible-applicants", getEligibleApplicants.Handle).Methods(http.MethodGet)

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
