package services_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthapp/backend/internal/adapters/memory"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

func seededCart() []entities.CartItem {
	return []entities.CartItem{
		{ID: "1", ProductID: "limcee-500", Name: "Limcee", Price: 24.68, Quantity: 2, Seller: "pharmacy"},
		{ID: "2", ProductID: "neurobion-forte", Name: "Neurobion Forte", Price: 40.88, Quantity: 1, Seller: "pharmacy"},
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("computes totals", func(t *testing.T) {
		repo := new(MockCartRepository)
		service := services.NewCartService(repo, nil, nil, 0)

		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)

		view, err := service.GetCart(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", view.SessionID)
		assert.Equal(t, 90.24, view.Totals.Subtotal)
		assert.Equal(t, 90.24, view.Totals.Total)
		assert.True(t, view.Totals.FreeDelivery)
		repo.AssertExpectations(t)
	})

	t.Run("blank session uses the default", func(t *testing.T) {
		repo := new(MockCartRepository)
		service := services.NewCartService(repo, nil, nil, 49.99)

		repo.On("Get", mock.Anything, "default").Return([]entities.CartItem(nil), nil)

		view, err := service.GetCart(context.Background(), "  ")

		require.NoError(t, err)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		assert.Equal(t, 49.99, view.Totals.Total)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockCartRepository)
		service := services.NewCartService(repo, nil, nil, 0)

		repo.On("Get", mock.Anything, "alice").Return(nil, apperrors.NewInternalError("failed", errors.New("db down")))

		_, err := service.GetCart(context.Background(), "alice")
		assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("clamps at one and publishes", func(t *testing.T) {
		repo := new(MockCartRepository)
		bus := new(MockEventBus)
		service := services.NewCartService(repo, nil, bus, 0)

		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
		repo.On("Save", mock.Anything, "alice", mock.MatchedBy(func(items []entities.CartItem) bool {
			return len(items) == 2 && items[0].Quantity == 1 && items[1].Quantity == 1
		})).Return(nil)
		bus.On("Publish", mock.Anything, providers.EventChannelCartUpdates, mock.MatchedBy(func(e *entities.CartEvent) bool {
			return e.SessionID == "alice" && e.ItemID == "1" && e.Type == entities.CartEventQuantityChanged
		})).Return(nil)
		bus.On("Publish", mock.Anything, providers.GetCartChannel("alice"), mock.Anything).Return(nil)

		view, err := service.UpdateQuantity(context.Background(), "alice", "1", -5)

		require.NoError(t, err)
		assert.Equal(t, 1, view.Items[0].Quantity)
		assert.Equal(t, 65.56, view.Totals.Subtotal)
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("oversized delta saturates at the cart limit", func(t *testing.T) {
		repo := new(MockCartRepository)
		service := services.NewCartService(repo, nil, nil, 0)

		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
		repo.On("Save", mock.Anything, "alice", mock.MatchedBy(func(items []entities.CartItem) bool {
			return items[0].Quantity == viewstate.MaxQuantity
		})).Return(nil)

		view, err := service.UpdateQuantity(context.Background(), "alice", "1", math.MaxInt)

		require.NoError(t, err)
		assert.Equal(t, viewstate.MaxQuantity, view.Items[0].Quantity)
		assert.Positive(t, view.Totals.Subtotal)
		repo.AssertExpectations(t)
	})

	t.Run("unknown item is not found and nothing is saved", func(t *testing.T) {
		repo := new(MockCartRepository)
		service := services.NewCartService(repo, nil, nil, 0)

		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)

		_, err := service.UpdateQuantity(context.Background(), "alice", "missing", 1)

		assert.True(t, apperrors.IsNotFound(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the mutation", func(t *testing.T) {
		repo := new(MockCartRepository)
		bus := new(MockEventBus)
		service := services.NewCartService(repo, nil, bus, 0)

		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
		repo.On("Save", mock.Anything, "alice", mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		view, err := service.UpdateQuantity(context.Background(), "alice", "2", 2)

		require.NoError(t, err)
		assert.Equal(t, 3, view.Items[1].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	repo := new(MockCartRepository)
	service := services.NewCartService(repo, nil, nil, 0)

	repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
	repo.On("Save", mock.Anything, "alice", mock.MatchedBy(func(items []entities.CartItem) bool {
		return len(items) == 1 && items[0].ID == "1"
	})).Return(nil)

	view, err := service.RemoveItem(context.Background(), "alice", "2")

	require.NoError(t, err)
	assert.Equal(t, 49.36, view.Totals.Subtotal)
	assert.Equal(t, 2, view.Totals.ItemCount)

	_, err = service.RemoveItem(context.Background(), "alice", "9")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("merges with an existing line", func(t *testing.T) {
		repo := new(MockCartRepository)
		catalog := new(MockCatalogRepository)
		service := services.NewCartService(repo, catalog, nil, 0)

		catalog.On("GetProduct", mock.Anything, "limcee-500").
			Return(&entities.Product{ID: "limcee-500", Name: "Limcee", Price: 24.68, Seller: "pharmacy"}, nil)
		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
		repo.On("Save", mock.Anything, "alice", mock.Anything).Return(nil)

		view, err := service.AddItem(context.Background(), "alice", "limcee-500", 1)

		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, 3, view.Items[0].Quantity)
		assert.Equal(t, 114.92, view.Totals.Subtotal)
	})

	t.Run("new product gets a generated id", func(t *testing.T) {
		repo := new(MockCartRepository)
		catalog := new(MockCatalogRepository)
		service := services.NewCartService(repo, catalog, nil, 0)

		catalog.On("GetProduct", mock.Anything, "ors").
			Return(&entities.Product{ID: "ors", Name: "ORS Sachet", Price: 12}, nil)
		repo.On("Get", mock.Anything, "alice").Return(seededCart(), nil)
		repo.On("Save", mock.Anything, "alice", mock.Anything).Return(nil)

		view, err := service.AddItem(context.Background(), "alice", "ors", 0)

		require.NoError(t, err)
		require.Len(t, view.Items, 3)
		assert.NotEmpty(t, view.Items[2].ID)
		assert.Equal(t, 1, view.Items[2].Quantity)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		repo := new(MockCartRepository)
		catalog := new(MockCatalogRepository)
		service := services.NewCartService(repo, catalog, nil, 0)

		catalog.On("GetProduct", mock.Anything, "bad").Return(&entities.Product{ID: "bad", Price: -1}, nil)

		_, err := service.AddItem(context.Background(), "alice", "bad", 1)

		assert.True(t, apperrors.IsValidation(err))
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("requires a product id", func(t *testing.T) {
		service := services.NewCartService(new(MockCartRepository), new(MockCatalogRepository), nil, 0)

		_, err := service.AddItem(context.Background(), "alice", "", 1)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		catalog := new(MockCatalogRepository)
		service := services.NewCartService(new(MockCartRepository), catalog, nil, 0)

		catalog.On("GetProduct", mock.Anything, "nope").Return(nil, apperrors.NewNotFoundError("product nope not found"))

		_, err := service.AddItem(context.Background(), "alice", "nope", 1)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestCartService_ConcurrentMutationsAreSerialized(t *testing.T) {
	store, err := memory.NewSeededStore(0)
	require.NoError(t, err)
	service := services.NewCartService(memory.NewCartAdapter(store), nil, nil, 0)

	sessions := []string{"alice", "bob", "carol"}
	var wg sync.WaitGroup
	for _, session := range sessions {
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func(session string) {
				defer wg.Done()
				_, err := service.UpdateQuantity(context.Background(), session, "2", 1)
				assert.NoError(t, err)
			}(session)
		}
	}
	wg.Wait()

	for _, session := range sessions {
		view, err := service.GetCart(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 41, view.Items[1].Quantity, session)
	}
}
