// Command seed loads the embedded dataset into PostgreSQL. Existing rows are
// kept unless -reset (or RESET_DB=true) is given; duplicates are skipped.
// With Redis enabled the default cart is written through the cart cache and
// cached HTTP responses are dropped.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/adapters/cache"
	"github.com/zatekoja/healthapp/backend/internal/adapters/database"
	"github.com/zatekoja/healthapp/backend/internal/adapters/events"
	"github.com/zatekoja/healthapp/backend/internal/adapters/memory"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
	"github.com/zatekoja/healthapp/backend/pkg/config"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "truncate record tables before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("health-app-seed", cfg.Server.Env)

	dataset, err := memory.LoadDataset()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if err := database.ApplySchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	if reset || os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("truncating tables before seeding")
		if err := database.Truncate(ctx, pgClient); err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	orderRepo := database.NewOrderAdapter(pgClient)
	claimRepo := database.NewClaimAdapter(pgClient)
	appointmentRepo := database.NewAppointmentAdapter(pgClient)
	var cartRepo repositories.CartRepository = database.NewCartAdapter(pgClient)

	var invalidator *services.CacheInvalidationService
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable; cached responses may be stale until they expire")
		} else {
			defer redisClient.Close()
			cacheProvider := cache.NewRedisAdapter(redisClient)
			cartRepo = database.NewCachedCartAdapter(cartRepo, cacheProvider)
			invalidator = services.NewCacheInvalidationService(cacheProvider, events.NewRedisEventBus(redisClient))
		}
	}

	var created, skipped int
	track := func(kind, id string, err error) {
		switch {
		case err == nil:
			created++
		case apperrors.IsConflict(err):
			skipped++
		default:
			log.Error().Err(err).Str("kind", kind).Str("id", id).Msg("failed to seed record")
		}
	}

	for i := range dataset.Orders {
		track("order", dataset.Orders[i].ID, orderRepo.Create(ctx, &dataset.Orders[i]))
	}
	for i := range dataset.Insurance.Claims {
		track("claim", dataset.Insurance.Claims[i].ID, claimRepo.Create(ctx, &dataset.Insurance.Claims[i]))
	}
	for i := range dataset.Appointments {
		track("appointment", dataset.Appointments[i].ID, appointmentRepo.Create(ctx, &dataset.Appointments[i]))
	}

	if err := cartRepo.Save(ctx, repositories.DefaultSessionID, dataset.Cart); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default cart")
	}

	if invalidator != nil {
		if err := invalidator.InvalidateAll(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to drop cached responses")
		}
	}

	log.Info().
		Int("created", created).
		Int("skipped", skipped).
		Int("cart_items", len(dataset.Cart)).
		Msg("seeding complete")
}
