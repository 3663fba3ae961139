// Package figures builds the demo figures used by the CLI and the gallery.
// The data is synthetic and seeded, so every run renders the same charts.
package figures

import (
	"math/rand"
	"time"

	"github.com/BasBBakkerIMF/imfcharts/charts"
)

// Kind selects the render front-end for a figure.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindPanel
)

// Figure is one demo chart with its WEO furniture.
type Figure struct {
	Kind         Kind
	Title        string
	Subtitle     string
	Caption      string
	Series       []charts.Series
	Values       []charts.Value
	ForecastFrom time.Time
}

func yearPoint(year int, value float64) charts.Point {
	return charts.Point{
		Time:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Value: value,
	}
}

// Unemployment rebuilds the WEO line chart demo: five countries, 2000-2025,
// cumulative random walks.
func Unemployment() Figure {
	rng := rand.New(rand.NewSource(42))
	countries := []string{"BRA", "CHL", "COL", "MEX", "PER"}

	series := make([]charts.Series, 0, len(countries))
	for _, country := range countries {
		s := charts.Series{Name: country}
		sum := 0.0
		for year := 2000; year <= 2025; year++ {
			sum += rng.NormFloat64()
			s.Points = append(s.Points, yearPoint(year, sum))
		}
		series = append(series, s)
	}

	return Figure{
		Kind:     KindLine,
		Title:    "Figure 1.2. Unemployment Rate Change",
		Subtitle: "(Percentage point change, annual data)",
		Caption:  "Source: IMF WEO and staff calculations.",
		Series:   series,
	}
}

// GDPPanel rebuilds the WEO panel demo: four countries, growth compounded
// into an index, with the 2022-2025 window flagged as forecast.
func GDPPanel() Figure {
	rng := rand.New(rand.NewSource(123))
	countries := []string{"BRA", "CHL", "COL", "MEX"}

	series := make([]charts.Series, 0, len(countries))
	for _, country := range countries {
		s := charts.Series{Name: country}
		index := 100.0
		for year := 2000; year <= 2025; year++ {
			index *= 1 + (0.02 + 0.01*rng.NormFloat64())
			s.Points = append(s.Points, yearPoint(year, index))
		}
		series = append(series, s)
	}

	return Figure{
		Kind:         KindPanel,
		Title:        "Figure X. Real GDP Panel",
		Subtitle:     "(Index, 2010=100)",
		Caption:      "Source: Synthetic data. Real GDP index rebased to 2010=100.",
		Series:       series,
		ForecastFrom: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// CategoryBars rebuilds the IMF bar chart demo.
func CategoryBars() Figure {
	return Figure{
		Kind:     KindBar,
		Title:    "Figure 2.1. Output by Category",
		Subtitle: "(Billions of US dollars)",
		Caption:  "Source: Synthetic data.",
		Values: []charts.Value{
			{Label: "A", Value: 3},
			{Label: "B", Value: 1},
			{Label: "C", Value: 4},
			{Label: "D", Value: 2},
		},
	}
}

// All lists the demo figures in gallery order.
func All() []Figure {
	return []Figure{Unemployment(), GDPPanel(), CategoryBars()}
}
