package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/healthapp/backend/internal/api/handlers"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

type MockRecordsService struct {
	mock.Mock
}

func (m *MockRecordsService) ListDocuments(ctx context.Context, sessionID, docType string) (*services.DocumentsView, error) {
	args := m.Called(ctx, sessionID, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DocumentsView), args.Error(1)
}

func (m *MockRecordsService) Upload(ctx context.Context, sessionID string, upload services.DocumentUpload) (*entities.Document, error) {
	args := m.Called(ctx, sessionID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func TestRecordsHandler_UploadDocument(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockService := new(MockRecordsService)
		upload := services.DocumentUpload{Title: "MRI Scan", Type: entities.DocumentTypeReport}
		mockService.On("Upload", mock.Anything, "alice", upload).
			Return(&entities.Document{ID: "9", Title: "MRI Scan", Type: entities.DocumentTypeReport}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/documents", strings.NewReader(`{"title":"MRI Scan","type":"report"}`))
		req.Header.Set("X-Session-ID", "alice")
		w := httptest.NewRecorder()

		handlers.NewRecordsHandler(mockService).UploadDocument(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"MRI Scan"`)
	})

	t.Run("blank title", func(t *testing.T) {
		mockService := new(MockRecordsService)
		mockService.On("Upload", mock.Anything, "default", mock.Anything).
			Return(nil, apperrors.NewValidationError("please enter a document title"))

		req := httptest.NewRequest(http.MethodPost, "/api/documents", strings.NewReader(`{"title":"  "}`))
		w := httptest.NewRecorder()

		handlers.NewRecordsHandler(mockService).UploadDocument(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "please enter a document title")
	})
}

func TestRecordsHandler_ListDocuments(t *testing.T) {
	mockService := new(MockRecordsService)
	mockService.On("ListDocuments", mock.Anything, "default", "invoice").
		Return(&services.DocumentsView{Type: "invoice", Documents: []services.DocumentCard{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/documents?type=invoice", nil)
	w := httptest.NewRecorder()

	handlers.NewRecordsHandler(mockService).ListDocuments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
