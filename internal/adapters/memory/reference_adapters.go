package memory

import (
	"context"
	"fmt"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// HealthAdapter implements repositories.HealthRepository
type HealthAdapter struct {
	store *Store
}

// NewHealthAdapter creates a new in-memory health repository
func NewHealthAdapter(store *Store) repositories.HealthRepository {
	return &HealthAdapter{store: store}
}

func (a *HealthAdapter) ListMetrics(ctx context.Context) ([]entities.HealthMetric, error) {
	var metrics []entities.HealthMetric
	a.store.read(func(ds *Dataset) { metrics = clone(ds.Health.Metrics) })
	return metrics, nil
}

// Activity returns an empty series for a period with no data
func (a *HealthAdapter) Activity(ctx context.Context, period entities.Period) ([]entities.ActivityPoint, error) {
	var points []entities.ActivityPoint
	a.store.read(func(ds *Dataset) { points = clone(ds.Health.Activity[period]) })
	return points, nil
}

func (a *HealthAdapter) ListGoals(ctx context.Context) ([]entities.HealthGoal, error) {
	var goals []entities.HealthGoal
	a.store.read(func(ds *Dataset) { goals = clone(ds.Health.Goals) })
	return goals, nil
}

func (a *HealthAdapter) Today(ctx context.Context) (*entities.DailySummary, error) {
	var today entities.DailySummary
	a.store.read(func(ds *Dataset) { today = ds.Health.Today })
	return &today, nil
}

// LocationAdapter serves locations and doubles as the search provider when
// no external index is configured.
type LocationAdapter struct {
	store *Store
}

// NewLocationAdapter creates a new in-memory location repository
func NewLocationAdapter(store *Store) *LocationAdapter {
	return &LocationAdapter{store: store}
}

func (a *LocationAdapter) locations(ds *Dataset, kind entities.LocationKind) *[]entities.Location {
	switch kind {
	case entities.LocationKindNearby:
		return &ds.Locations.Nearby
	case entities.LocationKindRecent:
		return &ds.Locations.Recent
	}
	return nil
}

// List retrieves the locations of one kind
func (a *LocationAdapter) List(ctx context.Context, kind entities.LocationKind) ([]entities.Location, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown location kind %q", kind))
	}
	var locations []entities.Location
	a.store.read(func(ds *Dataset) { locations = clone(*a.locations(ds, kind)) })
	return locations, nil
}

// IndexLocation adds or replaces a location
func (a *LocationAdapter) IndexLocation(ctx context.Context, kind entities.LocationKind, location *entities.Location) error {
	if !kind.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown location kind %q", kind))
	}
	a.store.write(func(ds *Dataset) {
		list := a.locations(ds, kind)
		updated := clone(*list)
		for i := range updated {
			if updated[i].ID == location.ID {
				updated[i] = *location
				*list = updated
				return
			}
		}
		*list = append(updated, *location)
	})
	return nil
}

// DeleteLocation removes a location from both lists
func (a *LocationAdapter) DeleteLocation(ctx context.Context, id string) error {
	a.store.write(func(ds *Dataset) {
		keep := func(l entities.Location) bool { return l.ID != id }
		ds.Locations.Nearby = viewstate.Filter(ds.Locations.Nearby, keep)
		ds.Locations.Recent = viewstate.Filter(ds.Locations.Recent, keep)
	})
	return nil
}

// SearchLocations matches query against name and address, ignoring case
func (a *LocationAdapter) SearchLocations(ctx context.Context, kind entities.LocationKind, query string) ([]entities.Location, error) {
	locations, err := a.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return viewstate.Search(locations, query, func(l entities.Location) []string {
		return []string{l.Name, l.Address}
	}), nil
}

// CatalogAdapter implements repositories.CatalogRepository
type CatalogAdapter struct {
	store *Store
}

// NewCatalogAdapter creates a new in-memory catalog repository
func NewCatalogAdapter(store *Store) repositories.CatalogRepository {
	return &CatalogAdapter{store: store}
}

// GetProduct retrieves a product by ID
func (a *CatalogAdapter) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	var (
		product entities.Product
		found   bool
	)
	a.store.read(func(ds *Dataset) {
		for _, p := range ds.Catalog.Products {
			if p.ID == id {
				product, found = p, true
				return
			}
		}
	})
	if !found {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	product.Features = clone(product.Features)
	return &product, nil
}

func (a *CatalogAdapter) ListLabPackages(ctx context.Context) ([]entities.LabPackage, error) {
	var packages []entities.LabPackage
	a.store.read(func(ds *Dataset) { packages = clone(ds.Catalog.LabPackages) })
	return packages, nil
}

func (a *CatalogAdapter) ListSubscriptionPlans(ctx context.Context) ([]entities.SubscriptionPlan, error) {
	var plans []entities.SubscriptionPlan
	a.store.read(func(ds *Dataset) { plans = clone(ds.Catalog.Subscriptions) })
	return plans, nil
}

func (a *CatalogAdapter) ListLanguages(ctx context.Context) ([]entities.Language, error) {
	var languages []entities.Language
	a.store.read(func(ds *Dataset) { languages = clone(ds.Catalog.Languages) })
	return languages, nil
}

// ProfileAdapter implements repositories.ProfileRepository
type ProfileAdapter struct {
	store *Store
}

// NewProfileAdapter creates a new in-memory profile repository
func NewProfileAdapter(store *Store) repositories.ProfileRepository {
	return &ProfileAdapter{store: store}
}

func (a *ProfileAdapter) GetHealthCard(ctx context.Context, sessionID string) (*entities.HealthCard, error) {
	var card entities.HealthCard
	a.store.readSession(sessionID, func(state sessionState, ds *Dataset) {
		card = currentCard(state, ds)
	})
	if card.PatientID == "" {
		return nil, apperrors.NewNotFoundError("health card not found")
	}
	return &card, nil
}

func (a *ProfileAdapter) UpdateHealthCard(
	ctx context.Context,
	sessionID string,
	apply func(entities.HealthCard) entities.HealthCard,
) (*entities.HealthCard, error) {
	var updated entities.HealthCard
	var missing bool
	a.store.updateSession(sessionID, func(state sessionState, ds *Dataset) sessionState {
		card := currentCard(state, ds)
		if card.PatientID == "" {
			missing = true
			return state
		}
		updated = apply(card)
		stored := updated
		state.card = &stored
		return state
	})
	if missing {
		return nil, apperrors.NewNotFoundError("health card not found")
	}
	return &updated, nil
}

func currentCard(state sessionState, ds *Dataset) entities.HealthCard {
	if state.card != nil {
		return *state.card
	}
	return ds.Profile.HealthCard
}

func (a *ProfileAdapter) ListFamilyMembers(ctx context.Context) ([]entities.FamilyMember, error) {
	var family []entities.FamilyMember
	a.store.read(func(ds *Dataset) { family = clone(ds.Profile.Family) })
	return family, nil
}

func (a *ProfileAdapter) ListPaymentOptions(ctx context.Context) ([]entities.PaymentOption, error) {
	var payments []entities.PaymentOption
	a.store.read(func(ds *Dataset) { payments = clone(ds.Profile.Payments) })
	return payments, nil
}
