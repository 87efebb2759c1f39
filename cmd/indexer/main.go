// Command indexer loads the delivery locations into Typesense.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/adapters/memory"
	"github.com/zatekoja/healthapp/backend/internal/adapters/search"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
	"github.com/zatekoja/healthapp/backend/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	observability.InitLogger("health-app-indexer", os.Getenv("APP_ENV"))

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		var err error
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataset, err := memory.LoadDataset()
	if err != nil {
		return err
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Info().Str("collection", typesense.LocationsCollection).Msg("dropping collection")
		if err := tsClient.DropSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to drop collection")
		}
	}

	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	adapter := search.NewTypesenseAdapter(tsClient)

	lists := []struct {
		kind      entities.LocationKind
		locations []entities.Location
	}{
		{entities.LocationKindNearby, dataset.Locations.Nearby},
		{entities.LocationKindRecent, dataset.Locations.Recent},
	}

	var indexed, failed int
	for _, list := range lists {
		for i := range list.locations {
			// Position keeps the dataset order for match-all queries
			if err := adapter.IndexLocationAt(ctx, list.kind, &list.locations[i], i); err != nil {
				failed++
				log.Warn().Err(err).Str("id", list.locations[i].ID).Str("kind", string(list.kind)).Msg("failed to index location")
				continue
			}
			indexed++
		}
	}

	log.Info().Int("indexed", indexed).Int("failed", failed).Msg("locations indexed")
	return nil
}
