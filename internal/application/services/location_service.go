package services

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
)

// LocationsView is the delivery location picker
type LocationsView struct {
	Query     string              `json:"query"`
	Nearby    []entities.Location `json:"nearby"`
	Recent    []entities.Location `json:"recent"`
	NoResults bool                `json:"no_results"`
}

// LocationService searches delivery locations
type LocationService struct {
	search providers.LocationSearchProvider
}

// NewLocationService creates a new location service
func NewLocationService(search providers.LocationSearchProvider) *LocationService {
	return &LocationService{search: search}
}

// Search filters nearby and recent locations by the same query.
// NoResults is only set when a non-empty query matched nothing.
func (s *LocationService) Search(ctx context.Context, query string) (*LocationsView, error) {
	nearby, err := s.search.SearchLocations(ctx, entities.LocationKindNearby, query)
	if err != nil {
		return nil, err
	}

	recent, err := s.search.SearchLocations(ctx, entities.LocationKindRecent, query)
	if err != nil {
		return nil, err
	}

	if nearby == nil {
		nearby = []entities.Location{}
	}
	if recent == nil {
		recent = []entities.Location{}
	}

	return &LocationsView{
		Query:     query,
		Nearby:    nearby,
		Recent:    recent,
		NoResults: query != "" && len(nearby) == 0 && len(recent) == 0,
	}, nil
}
