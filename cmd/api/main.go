package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/adapters/cache"
	"github.com/zatekoja/healthapp/backend/internal/adapters/database"
	"github.com/zatekoja/healthapp/backend/internal/adapters/events"
	"github.com/zatekoja/healthapp/backend/internal/adapters/memory"
	"github.com/zatekoja/healthapp/backend/internal/adapters/search"
	"github.com/zatekoja/healthapp/backend/internal/api/handlers"
	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/api/routes"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
	"github.com/zatekoja/healthapp/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			observability.EnableOTelLogs(cfg.OTEL.ServiceName)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// The embedded dataset backs every screen; Postgres optionally takes
	// over the records that change at runtime.
	store, err := memory.NewSeededStore(cfg.Data.MaxSessions)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable; running without response cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
		}
	}
	if eventBus == nil {
		eventBus = events.NewLocalEventBus()
	}

	var (
		cartRepo        repositories.CartRepository        = memory.NewCartAdapter(store)
		orderRepo       repositories.OrderRepository       = memory.NewOrderAdapter(store)
		claimRepo       repositories.ClaimRepository       = memory.NewClaimAdapter(store)
		appointmentRepo repositories.AppointmentRepository = memory.NewAppointmentAdapter(store)
	)

	if cfg.Data.Source == config.DataSourcePostgres {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		cartRepo = database.NewCartAdapter(pgClient)
		orderRepo = database.NewOrderAdapter(pgClient)
		claimRepo = database.NewClaimAdapter(pgClient)
		appointmentRepo = database.NewAppointmentAdapter(pgClient)
		log.Info().Msg("carts, orders, claims and appointments served from PostgreSQL")
	}

	if cacheProvider != nil {
		cartRepo = database.NewCachedCartAdapter(cartRepo, cacheProvider)
	}

	var locationSearch providers.LocationSearchProvider = memory.NewLocationAdapter(store)
	if cfg.Typesense.Enabled {
		typesenseClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("Typesense unavailable; searching locations in memory")
		} else {
			if err := typesenseClient.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			}
			locationSearch = search.NewTypesenseAdapter(typesenseClient)
		}
	}

	deliveryFee := cfg.Cart.DeliveryFee
	if deliveryFee == 0 {
		deliveryFee = store.Dataset().DeliveryFee
	}

	// Initialize services
	catalogRepo := memory.NewCatalogAdapter(store)
	cartService := services.NewCartService(cartRepo, catalogRepo, eventBus, deliveryFee)
	orderService := services.NewOrderService(orderRepo)
	insuranceService := services.NewInsuranceService(memory.NewInsurancePlanAdapter(store), claimRepo)
	scheduleService := services.NewScheduleService(appointmentRepo)
	analyticsService := services.NewAnalyticsService(memory.NewHealthAdapter(store))
	recordsService := services.NewRecordsService(memory.NewDocumentAdapter(store))
	locationService := services.NewLocationService(locationSearch)
	catalogService := services.NewCatalogService(catalogRepo)
	profileService := services.NewProfileService(memory.NewProfileAdapter(store))

	var cacheInvalidationService *services.CacheInvalidationService
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Warn().Err(err).Msg("failed to start cache invalidation service")
			cacheInvalidationService = nil
		}
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, cfg.Cache.TTLSeconds, metrics)
	}

	router := routes.NewRouter(routes.Handlers{
		Cart:        handlers.NewCartHandler(cartService, metrics),
		Orders:      handlers.NewOrderHandler(orderService),
		Insurance:   handlers.NewInsuranceHandler(insuranceService),
		Appointment: handlers.NewAppointmentHandler(scheduleService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
		Records:     handlers.NewRecordsHandler(recordsService),
		Location:    handlers.NewLocationHandler(locationService),
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Profile:     handlers.NewProfileHandler(profileService),
	}, cacheMiddleware, cfg.Server.AllowedOrigins, metrics)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("data_source", cfg.Data.Source).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("error closing event bus")
	}

	log.Info().Msg("server stopped")
}
