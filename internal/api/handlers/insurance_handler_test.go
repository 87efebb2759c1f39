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
)

type MockInsuranceService struct {
	mock.Mock
}

func (m *MockInsuranceService) GetOverview(ctx context.Context, status string) (*services.InsuranceView, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InsuranceView), args.Error(1)
}

func TestInsuranceHandler_GetOverview(t *testing.T) {
	mockService := new(MockInsuranceService)
	mockService.On("GetOverview", mock.Anything, "pending").
		Return(&services.InsuranceView{Status: "pending", Claims: []services.ClaimCard{}}, nil)

	w := httptest.NewRecorder()
	handlers.NewInsuranceHandler(mockService).GetOverview(w, httptest.NewRequest(http.MethodGet, "/api/insurance?status=pending", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	mockService.AssertExpectations(t)
}
