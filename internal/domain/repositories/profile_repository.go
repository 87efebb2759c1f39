package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// ProfileRepository provides the account holder's profile data
type ProfileRepository interface {
	// GetHealthCard retrieves the session's health card. A session that
	// never edited its card sees the seeded one.
	GetHealthCard(ctx context.Context, sessionID string) (*entities.HealthCard, error)

	// UpdateHealthCard replaces the session's card with apply(current) in
	// one step and returns the stored result
	UpdateHealthCard(ctx context.Context, sessionID string, apply func(entities.HealthCard) entities.HealthCard) (*entities.HealthCard, error)

	ListFamilyMembers(ctx context.Context) ([]entities.FamilyMember, error)
	ListPaymentOptions(ctx context.Context) ([]entities.PaymentOption, error)
}
