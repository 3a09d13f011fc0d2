package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	createAppointmentHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/delete_appointment"
	deleteServiceHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_appointment"
	getAutomationHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_automation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_available_slots"
	getClientHistoryHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_client_history"
	getDashboardHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_dashboard"
	getShopConfigHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_shop_config"
	listAppointmentsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/list_appointments"
	listClientsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/list_clients"
	listServicesHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/list_services"
	lookupClientHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/lookup_client"
	notifyAppointmentHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/notify_appointment"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/reschedule_appointment"
	updateAppointmentNotesHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/update_appointment_notes"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/update_appointment_status"
	updateAutomationHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/update_automation"
	updateServiceHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/update_service"
	updateShopConfigHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/update_shop_config"
	"github.com/m04kA/SMC-BarberShop/internal/api/middleware"
	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/config"
	"github.com/m04kA/SMC-BarberShop/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/client"
	shopRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/shop"
	"github.com/m04kA/SMC-BarberShop/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-BarberShop/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-BarberShop/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-BarberShop/internal/service/clients"
	dashboardService "github.com/m04kA/SMC-BarberShop/internal/service/dashboard"
	shopService "github.com/m04kA/SMC-BarberShop/internal/service/shop"
	createAppointmentUC "github.com/m04kA/SMC-BarberShop/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberShop/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/m04kA/SMC-BarberShop/internal/usecase/reschedule_appointment"
	sendNotificationUC "github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
	"github.com/m04kA/SMC-BarberShop/internal/worker/reminders"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/metrics"
	"github.com/m04kA/SMC-BarberShop/pkg/txmanager"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server and, if enabled, the WhatsApp reminders worker",
	RunE:  runServe,
}

// Sender отправитель сообщений WhatsApp (шлюз или заглушка)
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

func runServe(_ *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberShop...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Shop.Location()
	if err != nil {
		return err
	}
	defaults, err := shopDefaults(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	stopMetricsCh := make(chan struct{})
	db, err := openDatabase(ctx, cfg, log, metricsCollector, stopMetricsCh)
	if err != nil {
		return err
	}
	defer db.Close()

	// Кэш настроек и каталога. Без Redis декораторы просто читают из БД
	var appCache *cache.Cache
	if cfg.Redis.CacheEnabled() {
		appCache = cache.Connect(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix, time.Duration(cfg.Redis.TTL)*time.Second, log, metricsCollector)
	} else {
		appCache = cache.New(nil, cfg.Redis.Prefix, 0, log, metricsCollector)
		log.Info("Cache disabled (redis.addr is empty)")
	}
	defer appCache.Close()

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	clientRepository := clientRepo.NewRepository(db)
	catalogRepository := cache.NewCatalog(catalogRepo.NewRepository(db), appCache)
	shopRepository := cache.NewShop(shopRepo.NewRepository(db), appCache)
	txMgr := txmanager.NewTransactionManager(db)

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	// Шлюз WhatsApp. Без api_url сообщения только логируются
	var sender Sender
	if cfg.WhatsApp.APIURL != "" {
		sender = whatsapp.NewClient(whatsapp.Config{
			APIURL:      cfg.WhatsApp.APIURL,
			APIKey:      cfg.WhatsApp.APIKey,
			CountryCode: cfg.WhatsApp.CountryCode,
			Timeout:     time.Duration(cfg.WhatsApp.Timeout) * time.Second,
			RatePerSec:  cfg.WhatsApp.RatePerSec,
			Burst:       cfg.WhatsApp.Burst,
		}, log)
		log.Info("WhatsApp gateway client initialized (timeout=%ds, rate=%.2f/s)", cfg.WhatsApp.Timeout, cfg.WhatsApp.RatePerSec)
	} else {
		sender = whatsapp.NewNoopSender(log)
		log.Warn("WhatsApp api_url is empty, messages will only be logged")
	}

	// Инициализируем сервисы
	shopSvc := shopService.NewService(shopRepository, defaults, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, timeProvider, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, appointmentRepository, log)
	dashboardSvc := dashboardService.NewService(appointmentRepository, clientRepository, catalogRepository, timeProvider, log)

	// Инициализируем use cases
	loader := availability.NewLoader(shopRepository, catalogRepository, appointmentRepository, defaults.BusinessHours)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(loader, timeProvider, metricsCollector, log, "api")

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		catalogRepository,
		loader,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		loader,
		txMgr,
		timeProvider,
		log,
	)

	sendNotificationUseCase := sendNotificationUC.NewUseCase(
		appointmentRepository,
		shopSvc,
		sender,
		timeProvider,
		metricsCollector,
		log,
	)

	// Воркер напоминаний
	if cfg.Reminders.Enabled {
		worker := reminders.NewWorker(
			appointmentRepository,
			shopSvc,
			sendNotificationUseCase,
			timeProvider,
			log,
			time.Duration(cfg.Reminders.PollInterval)*time.Second,
		)
		go worker.Run(ctx)
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentNotes := updateAppointmentNotesHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	notifyAppointment := notifyAppointmentHandler.NewHandler(sendNotificationUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	lookupClient := lookupClientHandler.NewHandler(clientsSvc, log)
	getClientHistory := getClientHistoryHandler.NewHandler(clientsSvc, log)
	getShopConfig := getShopConfigHandler.NewHandler(shopSvc, log)
	updateShopConfig := updateShopConfigHandler.NewHandler(shopSvc, log)
	getAutomation := getAutomationHandler.NewHandler(shopSvc, log)
	updateAutomation := updateAutomationHandler.NewHandler(shopSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log), middleware.RequestID, middleware.AccessLog(log))

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Слоты ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}/notes", updateAppointmentNotes.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}/notify", notifyAppointment.Handle).Methods(http.MethodPost)

	// --- Услуги ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/lookup", lookupClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/appointments", getClientHistory.Handle).Methods(http.MethodGet)

	// --- Настройки барбершопа ---
	api.HandleFunc("/shop/config", getShopConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/config", updateShopConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/shop/automation", getAutomation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/automation", updateAutomation.Handle).Methods(http.MethodPut)

	// --- Дашборд ---
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

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
	return nil
}
