package services

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
)

// ClaimCard is one claim on the claims tab. ApprovedAmount is only
// populated for approved claims.
type ClaimCard struct {
	ID             string                `json:"id"`
	HospitalName   string                `json:"hospital_name"`
	ClaimAmount    float64               `json:"claim_amount"`
	ApprovedAmount *float64              `json:"approved_amount,omitempty"`
	Date           string                `json:"date"`
	Status         entities.ClaimStatus  `json:"status"`
	Style          viewstate.StatusStyle `json:"style"`
}

// InsuranceView is the insurance screen
type InsuranceView struct {
	Plan     *entities.InsurancePlan    `json:"plan"`
	Benefits []entities.CoverageBenefit `json:"benefits"`
	Status   string                     `json:"status"`
	Claims   []ClaimCard                `json:"claims"`
	Summary  viewstate.ClaimSummary     `json:"summary"`
}

// InsuranceService builds the insurance plan and claims screen
type InsuranceService struct {
	plans  repositories.InsurancePlanRepository
	claims repositories.ClaimRepository
}

// NewInsuranceService creates a new insurance service
func NewInsuranceService(plans repositories.InsurancePlanRepository, claims repositories.ClaimRepository) *InsuranceService {
	return &InsuranceService{plans: plans, claims: claims}
}

// GetOverview returns the active plan and the claims with the given status.
// The summary always covers every claim.
func (s *InsuranceService) GetOverview(ctx context.Context, status string) (*InsuranceView, error) {
	plan, err := s.plans.GetPlan(ctx)
	if err != nil {
		return nil, err
	}

	benefits, err := s.plans.ListBenefits(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.claims.List(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = viewstate.All
	}

	filtered := viewstate.FilterClaims(claims, status)
	cards := make([]ClaimCard, 0, len(filtered))
	for _, c := range filtered {
		card := ClaimCard{
			ID:           c.ID,
			HospitalName: c.HospitalName,
			ClaimAmount:  c.ClaimAmount,
			Date:         c.Date,
			Status:       c.Status,
			Style:        viewstate.ClaimStatusStyle(c.Status),
		}
		if amount, ok := viewstate.VisibleApprovedAmount(c); ok {
			card.ApprovedAmount = &amount
		}
		cards = append(cards, card)
	}

	return &InsuranceView{
		Plan:     plan,
		Benefits: benefits,
		Status:   status,
		Claims:   cards,
		Summary:  viewstate.SummarizeClaims(claims),
	}, nil
}
