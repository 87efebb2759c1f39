package viewstate

import (
	"fmt"
	"math"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// Percentage returns current/target as a percentage clamped to [0, 100].
// A zero, negative or non-finite target yields 0.
func Percentage(current, target float64) float64 {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return 0
	}
	return clampPercent(current / target * 100)
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// PercentLabel renders p rounded to the nearest whole percent, e.g. "85%"
func PercentLabel(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(clampPercent(p))))
}

// GoalProgress is a goal card with its progress bar
type GoalProgress struct {
	Goal           entities.HealthGoal `json:"goal"`
	Percent        float64             `json:"percent"`
	Label          string              `json:"label"`
	Width          string              `json:"width"`
	MatchesDisplay bool                `json:"matches_display"`
	Complete       bool                `json:"complete"`
}

// Progress derives a goal's percentage from Current/Target. MatchesDisplay
// reports whether the dataset's literal percentage rounds to the same label.
func Progress(goal entities.HealthGoal) GoalProgress {
	p := Percentage(goal.Current, goal.Target)
	label := PercentLabel(p)
	return GoalProgress{
		Goal:           goal,
		Percent:        p,
		Label:          label,
		Width:          label,
		MatchesDisplay: PercentLabel(goal.DisplayedPercent) == label,
		Complete:       goal.Target > 0 && goal.Current >= goal.Target,
	}
}

// DiscountPercent returns round((original - discounted) / original × 100),
// clamped to [0, 100]. A non-positive original price yields 0.
func DiscountPercent(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round(clampPercent((original - discounted) / original * 100)))
}

// Trend is the direction of a metric's change
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// MetricTrend is the change row under a vital sign
type MetricTrend struct {
	Direction Trend   `json:"direction"`
	Magnitude float64 `json:"magnitude"`
	Color     string  `json:"color,omitempty"`
	Visible   bool    `json:"visible"`
}

// TrendOf classifies a signed change. Zero change hides the row.
func TrendOf(change float64) MetricTrend {
	switch {
	case change > 0:
		return MetricTrend{Direction: TrendUp, Magnitude: change, Color: "#16A34A", Visible: true}
	case change < 0:
		return MetricTrend{Direction: TrendDown, Magnitude: -change, Color: "#DC2626", Visible: true}
	}
	return MetricTrend{Direction: TrendFlat}
}
