// Package breaks plans clean axis breaks for a numeric series: a major step
// picked from the data span, evenly spaced major tick positions covering the
// data range with outward rounding, one minor tick midway between each pair
// of majors, and the recommended axis limits.
//
// Plans are plain values computed from their input alone, so the functions
// here are safe to call concurrently.
package breaks

import (
	"errors"
	"math"
)

// ErrNonPositiveStep is returned by WithStep when the supplied step is not a
// positive number.
var ErrNonPositiveStep = errors.New("breaks: major step must be positive")

// Limits is the recommended axis range: the outward-rounded bounds of the
// major break sequence. Both bounds are multiples of the major step.
type Limits struct {
	Low  float64
	High float64
}

// Plan holds the break positions and axis limits for one series.
// Major is strictly increasing and covers at least the data range; Minor
// holds the midpoint of each consecutive pair of majors.
type Plan struct {
	Major  []float64
	Minor  []float64
	Limits Limits
}

// Auto plans breaks with a step chosen from the span of y: spans up to 5
// step by 1, up to 10 by 2, up to 20 by 5, up to 50 by 10, and anything
// wider by 20. NaN values are ignored. A series that is empty after
// filtering yields an empty plan with limits (0, 1).
func Auto(y []float64) Plan {
	return plan(y, 0)
}

// WithStep plans breaks with an explicit major step.
func WithStep(y []float64, majorBy float64) (Plan, error) {
	if majorBy <= 0 || math.IsNaN(majorBy) {
		return Plan{}, ErrNonPositiveStep
	}
	return plan(y, majorBy), nil
}

// MinorBreaks returns the midpoint between each consecutive pair of major
// breaks. Fewer than two majors yield no minors.
func MinorBreaks(major []float64) []float64 {
	if len(major) < 2 {
		return nil
	}
	minor := make([]float64, len(major)-1)
	for i := range minor {
		minor[i] = (major[i] + major[i+1]) / 2
	}
	return minor
}

// plan does the work for Auto and WithStep. majorBy 0 means pick the step
// from the span.
func plan(y []float64, majorBy float64) Plan {
	yMin, yMax, ok := minMax(y)
	if !ok {
		return Plan{Limits: Limits{Low: 0, High: 1}}
	}
	if majorBy == 0 {
		majorBy = autoStep(yMax - yMin)
	}

	low := math.Floor(yMin/majorBy) * majorBy
	high := math.Ceil(yMax/majorBy) * majorBy

	// Generate by index so repeated addition cannot drift; the last element
	// must land on high exactly.
	n := int(math.Round((high-low)/majorBy)) + 1
	major := make([]float64, n)
	for i := range major {
		major[i] = low + float64(i)*majorBy
	}
	major[n-1] = high

	return Plan{
		Major:  major,
		Minor:  MinorBreaks(major),
		Limits: Limits{Low: low, High: high},
	}
}

// autoStep maps a data span to a clean axis increment. The ladder is tuned
// for the ranges seen in WEO-style charts (growth rates, indices); every
// span beyond it steps by 20.
func autoStep(span float64) float64 {
	switch {
	case span <= 5:
		return 1
	case span <= 10:
		return 2
	case span <= 20:
		return 5
	case span <= 50:
		return 10
	default:
		return 20
	}
}

// minMax returns the extremes of y, skipping NaNs. ok is false when no
// usable value remains.
func minMax(y []float64) (lo, hi float64, ok bool) {
	for _, v := range y {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}
