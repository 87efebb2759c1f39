package typesense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/zatekoja/healthapp/backend/pkg/config"
	"github.com/zatekoja/healthapp/backend/pkg/retry"
)

const (
	LocationsCollection = "locations"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	err := retry.Do(context.Background(), retry.DefaultConfig(), "Typesense", func(ctx context.Context) error {
		healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		healthy, err := client.Health(healthCtx, 2*time.Second)
		if err != nil {
			return err
		}
		if !healthy {
			return errors.New("typesense reports unhealthy")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("connected to Typesense")
	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// LocationsSchema is the collection schema for delivery locations
func LocationsSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: LocationsCollection,
		Fields: []api.Field{
			{Name: "location_id", Type: "string"},
			{Name: "name", Type: "string", Infix: pointer.True()},
			{Name: "address", Type: "string", Infix: pointer.True()},
			{Name: "distance", Type: "string", Optional: pointer.True()},
			{Name: "kind", Type: "string", Facet: pointer.True()},
			{Name: "position", Type: "int32"},
		},
		DefaultSortingField: pointer.String("position"),
	}
}

// InitSchema ensures the locations collection exists
func (c *Client) InitSchema(ctx context.Context) error {
	if _, err := c.client.Collection(LocationsCollection).Retrieve(ctx); err == nil {
		log.Debug().Str("collection", LocationsCollection).Msg("typesense collection already exists")
		return nil
	}

	if _, err := c.client.Collections().Create(ctx, LocationsSchema()); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Info().Str("collection", LocationsCollection).Msg("created typesense collection")
	return nil
}

// DropSchema deletes the locations collection so it can be rebuilt
func (c *Client) DropSchema(ctx context.Context) error {
	if _, err := c.client.Collection(LocationsCollection).Delete(ctx); err != nil {
		var httpErr *typesense.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == 404 {
			return nil
		}
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	return nil
}
