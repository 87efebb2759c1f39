package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

func TestRecordsService(t *testing.T) {
	docs := []entities.Document{
		{ID: "1", Title: "Blood Test Report", Type: entities.DocumentTypeReport},
		{ID: "2", Title: "Prescription", Type: entities.DocumentTypePrescription},
	}

	t.Run("lists by type", func(t *testing.T) {
		repo := new(MockDocumentRepository)
		repo.On("List", mock.Anything, "alice").Return(docs, nil)

		view, err := services.NewRecordsService(repo).ListDocuments(context.Background(), "alice", "prescription")

		require.NoError(t, err)
		require.Len(t, view.Documents, 1)
		assert.Equal(t, "#10B981", view.Documents[0].Style.Color)
		assert.Equal(t, 1, view.Counts[entities.DocumentTypeReport])
	})

	t.Run("upload requires a title", func(t *testing.T) {
		repo := new(MockDocumentRepository)

		_, err := services.NewRecordsService(repo).Upload(context.Background(), "alice", services.DocumentUpload{Title: "   "})

		assert.True(t, apperrors.IsValidation(err))
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload defaults to report", func(t *testing.T) {
		repo := new(MockDocumentRepository)
		repo.On("Add", mock.Anything, "alice", mock.MatchedBy(func(d *entities.Document) bool {
			return d.Title == "MRI Scan" && d.Type == entities.DocumentTypeReport && d.ID != "" && d.Date != ""
		})).Return(nil)

		doc, err := services.NewRecordsService(repo).Upload(context.Background(), "alice", services.DocumentUpload{Title: " MRI Scan "})

		require.NoError(t, err)
		assert.Equal(t, "MRI Scan", doc.Title)
		_, parseErr := time.Parse("Jan 2, 2006", doc.Date)
		assert.NoError(t, parseErr)
		repo.AssertExpectations(t)
	})

	t.Run("upload rejects an unknown type", func(t *testing.T) {
		_, err := services.NewRecordsService(new(MockDocumentRepository)).
			Upload(context.Background(), "alice", services.DocumentUpload{Title: "x", Type: "selfie"})
		assert.True(t, apperrors.IsValidation(err))
	})
}
