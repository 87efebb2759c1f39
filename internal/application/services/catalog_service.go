package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// ProductView is the product detail screen with its quantity picker
type ProductView struct {
	Product         *entities.Product `json:"product"`
	DiscountPercent int               `json:"discount_percent"`
	Quantity        int               `json:"quantity"`
	LineTotal       float64           `json:"line_total"`
}

// LabPackageCard is a lab package with its discount badge
type LabPackageCard struct {
	entities.LabPackage
	DiscountPercent int `json:"discount_percent"`
}

// SubscriptionCard is a membership plan
type SubscriptionCard struct {
	entities.SubscriptionPlan
	HasTrial bool `json:"has_trial"`
}

// CatalogService serves products, lab packages, subscriptions and languages
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// GetProduct returns a product with the quantity picker applied.
// quantity outside the cart limits is clamped before delta is applied.
func (s *CatalogService) GetProduct(ctx context.Context, id string, quantity, delta int) (*ProductView, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(product.Price); err != nil {
		return nil, err
	}

	quantity = viewstate.ClampQuantity(quantity, delta)

	return &ProductView{
		Product:         product,
		DiscountPercent: viewstate.DiscountPercent(product.OriginalPrice, product.Price),
		Quantity:        quantity,
		LineTotal:       viewstate.LineTotal(entities.CartItem{Price: product.Price, Quantity: quantity}),
	}, nil
}

// ListLabPackages returns the lab packages with their discounts
func (s *CatalogService) ListLabPackages(ctx context.Context) ([]LabPackageCard, error) {
	packages, err := s.repo.ListLabPackages(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]LabPackageCard, 0, len(packages))
	for _, p := range packages {
		cards = append(cards, LabPackageCard{
			LabPackage:      p,
			DiscountPercent: viewstate.DiscountPercent(p.OriginalPrice, p.DiscountedPrice),
		})
	}
	return cards, nil
}

// ListSubscriptions returns the membership plans
func (s *CatalogService) ListSubscriptions(ctx context.Context) ([]SubscriptionCard, error) {
	plans, err := s.repo.ListSubscriptionPlans(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]SubscriptionCard, 0, len(plans))
	for _, p := range plans {
		cards = append(cards, SubscriptionCard{SubscriptionPlan: p, HasTrial: p.TrialDays > 0})
	}
	return cards, nil
}

// GetSubscription looks up a plan by ID
func (s *CatalogService) GetSubscription(ctx context.Context, id string) (*SubscriptionCard, error) {
	plans, err := s.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("subscription plan %s not found", id))
}

// SearchLanguages filters languages by name, ignoring case
func (s *CatalogService) SearchLanguages(ctx context.Context, query string) ([]entities.Language, error) {
	languages, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.Search(languages, query, func(l entities.Language) []string {
		return []string{l.Name}
	}), nil
}
