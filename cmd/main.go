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

	cancelBookingHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_available_slots"
	getQuoteHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_quote"
	getScheduleRecommendationsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_schedule_recommendations"
	getServiceRecommendationsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_service_recommendations"
	validatePromoHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/validate_promo"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/config"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/cache"
	catalogRepo "github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-QuoteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/weather"
	availabilityService "github.com/m04kA/SMC-QuoteService/internal/service/availability"
	pricingService "github.com/m04kA/SMC-QuoteService/internal/service/pricing"
	recommendationService "github.com/m04kA/SMC-QuoteService/internal/service/recommendation"
	createBookingUC "github.com/m04kA/SMC-QuoteService/internal/usecase/create_booking"
	getQuoteUC "github.com/m04kA/SMC-QuoteService/internal/usecase/get_quote"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/metrics"
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

	log.Info("Starting SMC-QuoteService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil коллектор допустим: все методы Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог тарифов, промокодов и праздников
	catalogRepository := catalogRepo.NewDefaultRepository()
	if cfg.Catalog.File != "" {
		c, err := catalogRepo.LoadFile(cfg.Catalog.File)
		if err != nil {
			log.Fatal("Failed to load catalog: %v", err)
		}
		catalogRepository = catalogRepo.NewRepository(c)
		log.Info("Catalog loaded from %s (service types=%d, promo codes=%d, holidays=%d)",
			cfg.Catalog.File, len(c.ServiceTypes), len(c.PromoCodes), len(c.Holidays))
	} else {
		log.Info("Using built-in catalog")
	}

	// Инициализируем репозитории и интеграции
	reservationRepository := reservationRepo.NewRepository()
	weatherProvider := weather.NewSimulated(cfg.Weather.Seed)
	quoteCache := cache.New[string, *domain.PricingBreakdown](cfg.QuoteCacheTTL(), nil)
	log.Info("Quote cache initialized (ttl=%s)", cfg.QuoteCacheTTL())

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		cfg.AvailabilityModelConfig(),
		reservationRepository,
		catalogRepository,
		weatherProvider,
		log,
	)

	pricingCfg := cfg.PricingEngineConfig()
	recommendationSvc := recommendationService.NewService(
		recommendationService.DefaultConfig(),
		pricingCfg,
		catalogRepository,
		log,
	)

	pricingSvc := pricingService.NewService(pricingCfg, catalogRepository, quoteCache, log).
		WithRecommender(recommendationSvc).
		WithSlotSource(availabilitySvc).
		WithMetrics(metricsCollector)

	// Инициализируем use cases
	getQuoteUseCase := getQuoteUC.NewUseCase(availabilitySvc, pricingSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilitySvc,
		pricingSvc,
		catalogRepository,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	getScheduleRecommendations := getScheduleRecommendationsHandler.NewHandler(availabilitySvc, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(pricingSvc, log)
	getServiceRecommendations := getServiceRecommendationsHandler.NewHandler(recommendationSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Проверка даты
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор даты и слота
	api.HandleFunc("/schedule-recommendations", getScheduleRecommendations.Handle).Methods(http.MethodGet)

	// --- Расчет ---
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/promo-codes/validate", validatePromo.Handle).Methods(http.MethodPost)
	api.HandleFunc("/service-recommendations", getServiceRecommendations.Handle).Methods(http.MethodPost)

	// --- Бронирование слотов ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{date}/{startTime}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
