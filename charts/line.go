package charts

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

type lineConfig struct {
	height   int
	forecast time.Time
}

// LineOption adjusts how TimeSeriesSplit renders.
type LineOption func(*lineConfig)

// WithHeight overrides the default width/8 chart height.
func WithHeight(h int) LineOption {
	return func(c *lineConfig) { c.height = h }
}

// WithForecast draws observations at or after from in the theme's shade
// color and appends a forecast entry to the legend.
func WithForecast(from time.Time) LineOption {
	return func(c *lineConfig) { c.forecast = from }
}

// TimeSeriesSplit renders the line chart and its legend separately. The Y
// range is pinned to the plan's limits so ticks and lines agree, and each
// series takes its style from the theme palette in order.
func TimeSeriesSplit(series []Series, width int, th theme.Theme, plan breaks.Plan, opts ...LineOption) (chart, legend string) {
	cfg := lineConfig{height: DefaultHeight(width)}
	for _, opt := range opts {
		opt(&cfg)
	}

	lc := timeserieslinechart.New(width, cfg.height)
	lc.AxisStyle = th.Axis
	lc.LabelStyle = th.Label
	lc.XLabelFormatter = timeserieslinechart.DateTimeLabelFormatter()
	lc.SetYRange(plan.Limits.Low, plan.Limits.High)     // expected Y values
	lc.SetViewYRange(plan.Limits.Low, plan.Limits.High) // displayed Y values; requires SetYRange first
	lc.SetLineStyle(runes.ThinLineStyle)

	shade := lipgloss.NewStyle().Foreground(th.Shade)
	var legendBuilder strings.Builder
	for i, s := range series {
		style := th.SeriesStyle(i)
		if i > 0 {
			legendBuilder.WriteString("\n")
		}
		legendBuilder.WriteString(style.Render(fmt.Sprintf("%c %s", runes.FullBlock, s.Name)))

		lc.SetDataSetStyle(s.Name, style)
		for _, p := range s.Points {
			if !cfg.forecast.IsZero() && p.Time.After(cfg.forecast) {
				continue
			}
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
		}

		if cfg.forecast.IsZero() {
			continue
		}
		// The forecast window is a second dataset in the shade color. The
		// boundary point belongs to both so the line stays connected.
		name := s.Name + " (forecast)"
		lc.SetDataSetStyle(name, shade)
		for _, p := range s.Points {
			if p.Time.Before(cfg.forecast) {
				continue
			}
			lc.PushDataSet(name, timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
		}
	}

	if !cfg.forecast.IsZero() && len(series) > 0 {
		legendBuilder.WriteString("\n")
		legendBuilder.WriteString(shade.Render(fmt.Sprintf("░ forecast from %d", cfg.forecast.Year())))
	}

	lc.DrawBrailleAll()

	return lc.View(), legendBuilder.String()
}

// TimeSeries renders the chart with its legend beneath it.
func TimeSeries(series []Series, width int, th theme.Theme, plan breaks.Plan, opts ...LineOption) string {
	chart, legend := TimeSeriesSplit(series, width, th, plan, opts...)
	if legend == "" {
		return chart
	}
	return chart + "\n" + legend
}
