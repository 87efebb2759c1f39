package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// DocumentRepository defines the interface for health record documents.
// Uploads are scoped to the session that made them.
type DocumentRepository interface {
	// List retrieves the documents visible to a session, newest upload first
	List(ctx context.Context, sessionID string) ([]entities.Document, error)

	// Add prepends a document to the session's records
	Add(ctx context.Context, sessionID string, doc *entities.Document) error
}
