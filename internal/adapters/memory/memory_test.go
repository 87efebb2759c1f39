package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthapp/backend/internal/adapters/memory"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewSeededStore(0)
	require.NoError(t, err)
	return store
}

func TestLoadDataset(t *testing.T) {
	ds, err := memory.LoadDataset()
	require.NoError(t, err)

	assert.Len(t, ds.Cart, 2)
	assert.Len(t, ds.Orders, 4)
	assert.Len(t, ds.Insurance.Claims, 3)
	assert.Len(t, ds.Appointments, 5)
	assert.Len(t, ds.Health.Activity[entities.PeriodWeek], 7)
	assert.Len(t, ds.Locations.Nearby, 10)
	assert.Len(t, ds.Catalog.Languages, 13)
	assert.Equal(t, "JC-2024-001", ds.Profile.HealthCard.PatientID)
	assert.Zero(t, ds.DeliveryFee)
}

func TestParseDataset_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown order status", "orders:\n  - {id: \"1\", status: returned}\n"},
		{"zero quantity", "cart:\n  - {id: \"1\", quantity: 0}\n"},
		{"quantity above limit", "cart:\n  - {id: \"1\", quantity: 100}\n"},
		{"approved above claimed", "insurance:\n  claims:\n    - {id: \"1\", claim_amount: 10, approved_amount: 20, status: approved}\n"},
		{"unknown period", "health:\n  activity:\n    decade: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := memory.ParseDataset([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}

	_, err := memory.ParseDataset([]byte("orders: ["))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
}

func TestCartAdapter_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCartAdapter(newStore(t))

	items, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items[0].Quantity = 9
	require.NoError(t, repo.Save(ctx, "alice", items[:1]))

	alice, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 1)
	assert.Equal(t, 9, alice[0].Quantity)

	bob, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob, 2)
	assert.Equal(t, 2, bob[0].Quantity)
}

func TestStore_EvictsLeastRecentlyUsedSession(t *testing.T) {
	ctx := context.Background()
	ds, err := memory.LoadDataset()
	require.NoError(t, err)
	store, err := memory.NewStore(ds, 2)
	require.NoError(t, err)
	carts := memory.NewCartAdapter(store)

	require.NoError(t, carts.Save(ctx, "alice", nil))
	require.NoError(t, carts.Save(ctx, "bob", nil))
	_, err = carts.Get(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, carts.Save(ctx, "carol", nil))

	assert.Equal(t, 2, store.SessionCount())

	alice, err := carts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, alice, "recently used session keeps its emptied cart")

	bob, err := carts.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bob, 2, "evicted session starts over from the seeded cart")
}

func TestOrderAdapter_CreateConflict(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderAdapter(newStore(t))

	before, err := repo.List(ctx)
	require.NoError(t, err)

	err = repo.Create(ctx, &entities.Order{ID: "1", Status: entities.OrderStatusDelivered})
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))

	require.NoError(t, repo.Create(ctx, &entities.Order{ID: "5", Status: entities.OrderStatusProcessing}))
	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 5)
	assert.Len(t, before, 4, "earlier reads must not observe later writes")
}

func TestDocumentAdapter_UploadsPrependedPerSession(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDocumentAdapter(newStore(t))

	require.NoError(t, repo.Add(ctx, "alice", &entities.Document{ID: "u1", Title: "First"}))
	require.NoError(t, repo.Add(ctx, "alice", &entities.Document{ID: "u2", Title: "Second"}))

	docs, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, docs, 7)
	assert.Equal(t, "u2", docs[0].ID)
	assert.Equal(t, "u1", docs[1].ID)

	others, err := repo.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, others, 5)
}

func TestLocationAdapter(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLocationAdapter(newStore(t))

	all, err := repo.SearchLocations(ctx, entities.LocationKindNearby, "")
	require.NoError(t, err)
	assert.Len(t, all, 10)

	veda, err := repo.SearchLocations(ctx, entities.LocationKindNearby, "VEDA")
	require.NoError(t, err)
	assert.Len(t, veda, 2)

	recent, err := repo.SearchLocations(ctx, entities.LocationKindRecent, "chhani")
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, err = repo.List(ctx, entities.LocationKind("far"))
	assert.True(t, apperrors.IsValidation(err))

	require.NoError(t, repo.IndexLocation(ctx, entities.LocationKindRecent, &entities.Location{ID: "r2", Name: "Alkapuri", Address: "Vadodara"}))
	recent, err = repo.List(ctx, entities.LocationKindRecent)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	require.NoError(t, repo.DeleteLocation(ctx, "r2"))
	recent, err = repo.List(ctx, entities.LocationKindRecent)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestCatalogAdapter_GetProduct(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogAdapter(newStore(t))

	product, err := repo.GetProduct(ctx, "limcee-500")
	require.NoError(t, err)
	assert.Equal(t, 24.68, product.Price)
	assert.Equal(t, 30.0, product.OriginalPrice)

	_, err = repo.GetProduct(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestHealthAdapter_UnknownPeriodIsEmpty(t *testing.T) {
	repo := memory.NewHealthAdapter(newStore(t))

	points, err := repo.Activity(context.Background(), entities.Period("decade"))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestProfileAdapter_UpdateHealthCardPerSession(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProfileAdapter(newStore(t))

	updated, err := repo.UpdateHealthCard(ctx, "alice", func(card entities.HealthCard) entities.HealthCard {
		card.Address = "42 Marine Drive, Mumbai"
		return card
	})
	require.NoError(t, err)
	assert.Equal(t, "42 Marine Drive, Mumbai", updated.Address)

	updated.Address = "changed by caller"
	alice, err := repo.GetHealthCard(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "42 Marine Drive, Mumbai", alice.Address, "returned card must not alias the stored one")
	assert.Equal(t, "JC-2024-001", alice.PatientID)

	bob, err := repo.GetHealthCard(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Address, bob.Address)
}
