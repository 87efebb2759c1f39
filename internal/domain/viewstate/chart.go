package viewstate

import "github.com/zatekoja/healthapp/backend/internal/domain/entities"

// Bar colours on the activity chart
const (
	PeakBarColor    = "#2563EB"
	RegularBarColor = "#93C5FD"
)

// Bar is one normalised chart column
type Bar struct {
	Label         string  `json:"label"`
	Value         float64 `json:"value"`
	HeightPercent float64 `json:"height_percent"`
	Highlighted   bool    `json:"highlighted"`
	Color         string  `json:"color"`
}

// Chart is an activity series scaled against its maximum
type Chart struct {
	Max  float64 `json:"max"`
	Bars []Bar   `json:"bars"`
}

// NormalizeSeries scales every point to a percentage of the series maximum.
// Every point equal to the maximum is highlighted, so ties all get the peak
// colour. A series whose maximum is not positive has all heights at 0.
func NormalizeSeries(points []entities.ActivityPoint) Chart {
	chart := Chart{Bars: make([]Bar, 0, len(points))}
	if len(points) == 0 {
		return chart
	}

	chart.Max = points[0].Value
	for _, p := range points[1:] {
		if p.Value > chart.Max {
			chart.Max = p.Value
		}
	}

	for _, p := range points {
		bar := Bar{
			Label:       p.Label,
			Value:       p.Value,
			Highlighted: p.Value == chart.Max,
			Color:       RegularBarColor,
		}
		if chart.Max > 0 {
			bar.HeightPercent = clampPercent(p.Value / chart.Max * 100)
		}
		if bar.Highlighted {
			bar.Color = PeakBarColor
		}
		chart.Bars = append(chart.Bars, bar)
	}
	return chart
}
