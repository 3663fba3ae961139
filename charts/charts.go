// Package charts renders WEO-styled terminal charts. It has two front-ends
// sharing one break plan: a braille time-series line chart and a horizontal
// bar chart.
package charts

import "time"

// Point is one observation of a time series.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is a named sequence of observations.
type Series struct {
	Name   string
	Points []Point
}

// Value is one labeled value for a bar chart.
type Value struct {
	Label string
	Value float64
}

// SeriesValues flattens every observation across series, the input shape
// the break planner wants when one plan must cover all lines.
func SeriesValues(series []Series) []float64 {
	var out []float64
	for _, s := range series {
		for _, p := range s.Points {
			out = append(out, p.Value)
		}
	}
	return out
}

// BarValues flattens bar values for break planning.
func BarValues(values []Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Value
	}
	return out
}

// DefaultHeight is the chart height used when the caller does not pick one.
func DefaultHeight(width int) int {
	return width / 8
}
