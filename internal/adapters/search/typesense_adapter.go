package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	tsclient "github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/typesense"
)

// maxPerPage is the largest page Typesense serves
const maxPerPage = 250

// TypesenseAdapter implements location search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ providers.LocationSearchProvider = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// IndexLocation upserts a location. position keeps the dataset order.
func (a *TypesenseAdapter) IndexLocation(ctx context.Context, kind entities.LocationKind, location *entities.Location) error {
	return a.IndexLocationAt(ctx, kind, location, 0)
}

// IndexLocationAt upserts a location with an explicit sort position
func (a *TypesenseAdapter) IndexLocationAt(ctx context.Context, kind entities.LocationKind, location *entities.Location, position int) error {
	if _, err := a.client.Client().Collection(tsclient.LocationsCollection).Documents().Upsert(ctx, buildLocationDocument(kind, location, position)); err != nil {
		return fmt.Errorf("failed to index location: %w", err)
	}
	return nil
}

// DeleteLocation removes a location of either kind from the index
func (a *TypesenseAdapter) DeleteLocation(ctx context.Context, id string) error {
	for _, kind := range []entities.LocationKind{entities.LocationKindNearby, entities.LocationKindRecent} {
		_, err := a.client.Client().Collection(tsclient.LocationsCollection).Document(documentID(kind, id)).Delete(ctx)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to delete location from index: %w", err)
		}
	}
	return nil
}

// SearchLocations queries name and address. Hits are re-checked for a
// case-insensitive substring match so results agree with the in-memory search.
func (a *TypesenseAdapter) SearchLocations(ctx context.Context, kind entities.LocationKind, query string) ([]entities.Location, error) {
	result, err := a.client.Client().Collection(tsclient.LocationsCollection).Documents().Search(ctx, buildSearchParams(kind, query))
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	locations := make([]entities.Location, 0)
	if result.Hits == nil {
		return locations, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		loc := locationFromDocument(*hit.Document)
		if viewstate.MatchesQuery(query, loc.Name, loc.Address) {
			locations = append(locations, loc)
		}
	}
	return locations, nil
}

func documentID(kind entities.LocationKind, id string) string {
	return string(kind) + "-" + id
}

func buildLocationDocument(kind entities.LocationKind, location *entities.Location, position int) map[string]interface{} {
	return map[string]interface{}{
		"id":          documentID(kind, location.ID),
		"location_id": location.ID,
		"name":        location.Name,
		"address":     location.Address,
		"distance":    location.Distance,
		"kind":        string(kind),
		"position":    position,
	}
}

func buildSearchParams(kind entities.LocationKind, query string) *api.SearchCollectionParams {
	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		QueryBy:  pointer.String("name,address"),
		FilterBy: pointer.String("kind:=" + string(kind)),
		SortBy:   pointer.String("position:asc"),
		Page:     pointer.Int(1),
		PerPage:  pointer.Int(maxPerPage),
	}
	if query != "" {
		params.Q = pointer.String(query)
		params.Infix = pointer.String("always")
		params.SortBy = pointer.String("_text_match:desc,position:asc")
	}
	return params
}

func locationFromDocument(doc map[string]interface{}) entities.Location {
	str := func(key string) string {
		s, _ := doc[key].(string)
		return s
	}
	return entities.Location{
		ID:       str("location_id"),
		Name:     str("name"),
		Address:  str("address"),
		Distance: str("distance"),
	}
}

func isNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}
