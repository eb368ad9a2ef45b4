package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getReceiptHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/get_receipt"
	listCentersHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/list_centers"
	listDatesHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/list_dates"
	listGroupsHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/list_groups"
	listServicesHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/list_services"
	listTimesHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/list_times"
	registerVisitHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/register_visit"
	resetFlowHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/reset_flow"
	selectCenterHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/select_center"
	selectServiceHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/select_service"
	selectSlotHandler "github.com/m04kA/CNAP-BookingService/internal/api/handlers/select_slot"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/config"
	centersCache "github.com/m04kA/CNAP-BookingService/internal/infra/cache/centers"
	sessionStore "github.com/m04kA/CNAP-BookingService/internal/infra/session"
	queueServiceClient "github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
	catalogService "github.com/m04kA/CNAP-BookingService/internal/service/catalog"
	centersService "github.com/m04kA/CNAP-BookingService/internal/service/centers"
	receiptService "github.com/m04kA/CNAP-BookingService/internal/service/receipt"
	scheduleService "github.com/m04kA/CNAP-BookingService/internal/service/schedule"
	registerVisitUC "github.com/m04kA/CNAP-BookingService/internal/usecase/register_visit"
	"github.com/m04kA/CNAP-BookingService/pkg/logger"
	"github.com/m04kA/CNAP-BookingService/pkg/metrics"
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

	log.Info("Starting CNAP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к redis: кеш списка центров и состояние флоу
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционного клиента
	queueClient := queueServiceClient.NewClient(
		cfg.QueueService.BaseURL,
		cfg.QueueService.OrganisationGuid,
		time.Duration(cfg.QueueService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (QueueService=%s timeout=%ds)",
		cfg.QueueService.BaseURL, cfg.QueueService.Timeout)

	// Инициализируем кеш и хранилище сессий
	cache := centersCache.NewCache(redisClient, time.Duration(cfg.Centers.CacheTTLMinutes)*time.Minute)
	sessions := sessionStore.NewStore(redisClient, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	// Инициализируем сервисы
	centersSvc := centersService.NewService(queueClient, cache, cfg.Centers.AllowedIDs, log)
	catalogSvc := catalogService.NewService(queueClient, log)
	scheduleSvc := scheduleService.NewService(queueClient, log)
	receiptSvc := receiptService.NewService(queueClient, cfg.QueueService.OrganisationGuid, log)

	// Инициализируем use cases
	registerVisitUseCase := registerVisitUC.NewUseCase(queueClient, log)

	// Инициализируем handlers
	listCenters := listCentersHandler.NewHandler(centersSvc, log)
	selectCenter := selectCenterHandler.NewHandler(centersSvc, sessions, log)
	listGroups := listGroupsHandler.NewHandler(catalogSvc, sessions, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, sessions, log)
	selectService := selectServiceHandler.NewHandler(catalogSvc, sessions, log)
	listDates := listDatesHandler.NewHandler(scheduleSvc, sessions, log)
	listTimes := listTimesHandler.NewHandler(scheduleSvc, sessions, log)
	selectSlot := selectSlotHandler.NewHandler(scheduleSvc, sessions, log)
	registerVisit := registerVisitHandler.NewHandler(registerVisitUseCase, sessions, log)
	getReceipt := getReceiptHandler.NewHandler(receiptSvc, sessions, log)
	resetFlow := resetFlowHandler.NewHandler(sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Флоу записи: все роуты привязаны к cookie-сессии
	flowRouter := r.PathPrefix("/api/v1/flow").Subrouter()
	flowRouter.Use(middleware.Session)

	// --- Шаг 1: сервисные центры ---
	flowRouter.HandleFunc("/centers", listCenters.Handle).Methods(http.MethodGet)
	flowRouter.HandleFunc("/center", selectCenter.Handle).Methods(http.MethodPost)

	// --- Шаг 2: группы и услуги ---
	flowRouter.HandleFunc("/groups", listGroups.Handle).Methods(http.MethodGet)
	flowRouter.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	flowRouter.HandleFunc("/service", selectService.Handle).Methods(http.MethodPost)

	// --- Шаг 3: дата и время ---
	flowRouter.HandleFunc("/dates", listDates.Handle).Methods(http.MethodGet)
	flowRouter.HandleFunc("/times", listTimes.Handle).Methods(http.MethodGet)
	flowRouter.HandleFunc("/slot", selectSlot.Handle).Methods(http.MethodPost)

	// --- Шаг 4: регистрация визита ---
	flowRouter.HandleFunc("/registration", registerVisit.Handle).Methods(http.MethodPost)

	// --- Шаг 5: чек ---
	flowRouter.HandleFunc("/receipt", getReceipt.Handle).Methods(http.MethodGet)

	// --- Сброс флоу ---
	flowRouter.HandleFunc("/reset", resetFlow.Handle).Methods(http.MethodPost)

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
