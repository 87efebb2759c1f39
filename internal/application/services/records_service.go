package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

const documentDateLayout = "Jan 2, 2006"

// DocumentCard is a record with its type chip
type DocumentCard struct {
	entities.Document
	Style viewstate.StatusStyle `json:"style"`
}

// DocumentsView is the records screen for one type filter
type DocumentsView struct {
	Type      string                        `json:"type"`
	Documents []DocumentCard                `json:"documents"`
	Counts    map[entities.DocumentType]int `json:"counts"`
}

// DocumentUpload is the upload form
type DocumentUpload struct {
	Title  string                `json:"title"`
	Type   entities.DocumentType `json:"type"`
	Doctor string                `json:"doctor"`
}

// RecordsService builds the health records screen and accepts uploads
type RecordsService struct {
	repo repositories.DocumentRepository
	now  func() time.Time
}

// NewRecordsService creates a new records service
func NewRecordsService(repo repositories.DocumentRepository) *RecordsService {
	return &RecordsService{repo: repo, now: time.Now}
}

// ListDocuments returns the session's documents of one type, or all of them
func (s *RecordsService) ListDocuments(ctx context.Context, sessionID, docType string) (*DocumentsView, error) {
	docs, err := s.repo.List(ctx, normalizeSession(sessionID))
	if err != nil {
		return nil, err
	}

	if docType == "" {
		docType = viewstate.All
	}

	filtered := viewstate.FilterDocuments(docs, docType)
	cards := make([]DocumentCard, 0, len(filtered))
	for _, d := range filtered {
		cards = append(cards, DocumentCard{Document: d, Style: viewstate.DocumentTypeStyle(d.Type)})
	}

	return &DocumentsView{
		Type:      docType,
		Documents: cards,
		Counts:    viewstate.DocumentTypeCounts(docs),
	}, nil
}

// Upload records a new document at the top of the session's list.
// The title must not be blank; the type defaults to report.
func (s *RecordsService) Upload(ctx context.Context, sessionID string, upload DocumentUpload) (*entities.Document, error) {
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("please enter a document title")
	}

	docType := upload.Type
	if docType == "" {
		docType = entities.DocumentTypeReport
	}
	if !docType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown document type %q", upload.Type))
	}

	doc := &entities.Document{
		ID:     uuid.New().String(),
		Title:  title,
		Type:   docType,
		Date:   s.now().Format(documentDateLayout),
		Doctor: strings.TrimSpace(upload.Doctor),
	}

	if err := s.repo.Add(ctx, normalizeSession(sessionID), doc); err != nil {
		return nil, err
	}
	return doc, nil
}
