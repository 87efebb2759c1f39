package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/healthapp/backend/internal/api/handlers"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders(ctx context.Context, tab string) (*services.OrdersView, error) {
	args := m.Called(ctx, tab)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.OrdersView), args.Error(1)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	tests := []struct {
		name string
		url  string
		tab  string
	}{
		{"processing tab", "/api/orders?tab=processing", "processing"},
		{"no tab", "/api/orders", ""},
		{"unknown tab is passed through", "/api/orders?tab=returned", "returned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			mockService.On("ListOrders", mock.Anything, tt.tab).
				Return(&services.OrdersView{Tab: viewstate.OrderTab(tt.tab), Orders: []services.OrderCard{}}, nil)

			w := httptest.NewRecorder()
			handlers.NewOrderHandler(mockService).ListOrders(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"orders":[]`)
			mockService.AssertExpectations(t)
		})
	}
}
