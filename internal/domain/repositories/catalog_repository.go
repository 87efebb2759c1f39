package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// CatalogRepository provides the product and plan catalogues
type CatalogRepository interface {
	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, id string) (*entities.Product, error)

	ListLabPackages(ctx context.Context) ([]entities.LabPackage, error)
	ListSubscriptionPlans(ctx context.Context) ([]entities.SubscriptionPlan, error)
	ListLanguages(ctx context.Context) ([]entities.Language, error)
}
