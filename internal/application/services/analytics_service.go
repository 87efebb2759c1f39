package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// MetricCard is a vital sign with its trend indicator
type MetricCard struct {
	entities.HealthMetric
	Trend viewstate.MetricTrend `json:"trend"`
}

// AnalyticsView is the analytics dashboard for one period
type AnalyticsView struct {
	Period  entities.Period          `json:"period"`
	Metrics []MetricCard             `json:"metrics"`
	Chart   viewstate.Chart          `json:"chart"`
	Goals   []viewstate.GoalProgress `json:"goals"`
	Today   *entities.DailySummary   `json:"today"`
}

// AnalyticsService builds the analytics dashboard
type AnalyticsService struct {
	repo repositories.HealthRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repositories.HealthRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// GetDashboard returns metrics, the activity chart and goal progress.
// An empty period defaults to week.
func (s *AnalyticsService) GetDashboard(ctx context.Context, period string) (*AnalyticsView, error) {
	p := entities.PeriodWeek
	if period != "" {
		p = entities.Period(period)
	}
	if !p.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown period %q", period))
	}

	metrics, err := s.repo.ListMetrics(ctx)
	if err != nil {
		return nil, err
	}

	points, err := s.repo.Activity(ctx, p)
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	today, err := s.repo.Today(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]MetricCard, 0, len(metrics))
	for _, m := range metrics {
		cards = append(cards, MetricCard{HealthMetric: m, Trend: viewstate.TrendOf(m.Change)})
	}

	progress := make([]viewstate.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, viewstate.Progress(g))
	}

	return &AnalyticsView{
		Period:  p,
		Metrics: cards,
		Chart:   viewstate.NormalizeSeries(points),
		Goals:   progress,
		Today:   today,
	}, nil
}
