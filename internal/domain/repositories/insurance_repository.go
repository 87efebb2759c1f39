package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// ClaimRepository defines the interface for insurance claim operations
type ClaimRepository interface {
	// Create stores a new claim
	Create(ctx context.Context, claim *entities.InsuranceClaim) error

	// List retrieves all claims, newest first
	List(ctx context.Context) ([]entities.InsuranceClaim, error)
}

// InsurancePlanRepository exposes the member's active plan
type InsurancePlanRepository interface {
	// GetPlan retrieves the current plan
	GetPlan(ctx context.Context) (*entities.InsurancePlan, error)

	// ListBenefits retrieves the plan's coverage checklist
	ListBenefits(ctx context.Context) ([]entities.CoverageBenefit, error)
}
