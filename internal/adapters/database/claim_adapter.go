package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// ClaimAdapter implements the ClaimRepository interface
type ClaimAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewClaimAdapter creates a new insurance claim adapter
func NewClaimAdapter(client *postgres.Client) repositories.ClaimRepository {
	return &ClaimAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new claim
func (a *ClaimAdapter) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	record := goqu.Record{
		"id":              claim.ID,
		"hospital_name":   claim.HospitalName,
		"claim_amount":    claim.ClaimAmount,
		"approved_amount": claim.ApprovedAmount,
		"date":            claim.Date,
		"status":          claim.Status,
	}

	query, args, err := a.db.Insert(claimsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("claim %s already exists", claim.ID))
		}
		return apperrors.NewInternalError("failed to create claim", err)
	}
	return nil
}

// List retrieves all claims
func (a *ClaimAdapter) List(ctx context.Context) ([]entities.InsuranceClaim, error) {
	query, args, err := a.db.Select("id", "hospital_name", "claim_amount", "approved_amount", "date", "status").
		From(claimsTable).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	claims := make([]entities.InsuranceClaim, 0)
	if err := a.client.DBx().SelectContext(ctx, &claims, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list claims", err)
	}
	return claims, nil
}
