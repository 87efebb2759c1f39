package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// LocationRepository provides delivery address candidates
type LocationRepository interface {
	// List retrieves the locations of one kind
	List(ctx context.Context, kind entities.LocationKind) ([]entities.Location, error)
}
