package providers

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// LocationSearchProvider is a full-text index over delivery locations
type LocationSearchProvider interface {
	// IndexLocation adds or replaces a location in the index
	IndexLocation(ctx context.Context, kind entities.LocationKind, location *entities.Location) error

	// DeleteLocation removes a location from the index
	DeleteLocation(ctx context.Context, id string) error

	// SearchLocations returns the locations of one kind matching query.
	// An empty query returns every location of that kind.
	SearchLocations(ctx context.Context, kind entities.LocationKind, query string) ([]entities.Location, error)
}
