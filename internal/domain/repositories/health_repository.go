package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// HealthRepository provides the analytics dashboard data
type HealthRepository interface {
	ListMetrics(ctx context.Context) ([]entities.HealthMetric, error)

	// Activity retrieves the activity series for a period
	Activity(ctx context.Context, period entities.Period) ([]entities.ActivityPoint, error)

	ListGoals(ctx context.Context) ([]entities.HealthGoal, error)

	Today(ctx context.Context) (*entities.DailySummary, error)
}
