package figures

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/charts"
	"github.com/BasBBakkerIMF/imfcharts/decor"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// Render draws a figure at the given width: title block, chart body with
// its tick ruler, legend and caption.
func Render(fig Figure, width int, th theme.Theme) string {
	var body string
	switch fig.Kind {
	case KindBar:
		plan := breaks.Auto(charts.BarValues(fig.Values))
		body = charts.Bars(fig.Values, width, th) + "\n" + decor.XTickRuler(plan, width, th)
	case KindPanel:
		plan := breaks.Auto(charts.SeriesValues(fig.Series))
		var opts []charts.LineOption
		if !fig.ForecastFrom.IsZero() {
			opts = append(opts, charts.WithForecast(fig.ForecastFrom))
		}
		body = charts.Panel(fig.Series, width, th, plan, opts...)
	default:
		plan := breaks.Auto(charts.SeriesValues(fig.Series))
		height := charts.DefaultHeight(width)
		ruler := decor.YTickRuler(plan, height, th, decor.DefaultTicks)
		chartWidth := width - lipgloss.Width(ruler)
		var opts []charts.LineOption
		opts = append(opts, charts.WithHeight(height))
		if !fig.ForecastFrom.IsZero() {
			opts = append(opts, charts.WithForecast(fig.ForecastFrom))
		}
		chart, legend := charts.TimeSeriesSplit(fig.Series, chartWidth, th, plan, opts...)
		body = lipgloss.JoinHorizontal(lipgloss.Top, ruler, chart)
		if legend != "" {
			body += "\n" + legend
		}
	}

	var b strings.Builder
	b.WriteString(decor.TitleBlock(th, fig.Title, fig.Subtitle))
	b.WriteString("\n")
	b.WriteString(body)
	if fig.Caption != "" {
		b.WriteString("\n")
		b.WriteString(decor.Caption(th, fig.Caption))
	}
	return b.String()
}

// Plan returns the break plan a figure renders with, for display alongside
// the chart.
func Plan(fig Figure) breaks.Plan {
	if fig.Kind == KindBar {
		return breaks.Auto(charts.BarValues(fig.Values))
	}
	return breaks.Auto(charts.SeriesValues(fig.Series))
}
