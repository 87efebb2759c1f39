package entities

// HealthMetric is a vital sign card on the analytics dashboard.
// The sign of Change drives the trend indicator.
type HealthMetric struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label" yaml:"label"`
	Value  string  `json:"value" yaml:"value"`
	Unit   string  `json:"unit" yaml:"unit"`
	Change float64 `json:"change" yaml:"change"`
	Icon   string  `json:"icon" yaml:"icon"`
	Color  string  `json:"color" yaml:"color"`
}

// ActivityPoint is one bar of the activity chart
type ActivityPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Period selects which activity series the dashboard shows
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Valid reports whether p is a known period
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// HealthGoal is a weekly target with the user's progress toward it.
// DisplayedPercent is the literal the dataset ships with; it is not
// guaranteed to agree with Current/Target.
type HealthGoal struct {
	ID               string  `json:"id" yaml:"id"`
	Title            string  `json:"title" yaml:"title"`
	Current          float64 `json:"current" yaml:"current"`
	Target           float64 `json:"target" yaml:"target"`
	Unit             string  `json:"unit" yaml:"unit"`
	DisplayedPercent float64 `json:"displayed_percent" yaml:"displayed_percent"`
}

// DailySummary holds the "today" tiles
type DailySummary struct {
	Calories   float64 `json:"calories" yaml:"calories"`
	Steps      float64 `json:"steps" yaml:"steps"`
	SleepHours float64 `json:"sleep_hours" yaml:"sleep_hours"`
}
