package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// Panel renders one mini chart per series, two to a row, all sharing the
// same break plan so the panels stay comparable. Each panel carries the
// series name as its title and draws in the first palette color.
func Panel(series []Series, width int, th theme.Theme, plan breaks.Plan, opts ...LineOption) string {
	if len(series) == 0 {
		return ""
	}

	cell := width/2 - 1
	if cell < 8 {
		cell = width
	}

	views := make([]string, 0, len(series))
	for _, s := range series {
		chart, _ := TimeSeriesSplit([]Series{s}, cell, th, plan, opts...)
		views = append(views, th.Title.Render(s.Name)+"\n"+chart)
	}

	rows := make([]string, 0, (len(views)+1)/2)
	for i := 0; i < len(views); i += 2 {
		if i+1 < len(views) && cell < width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views[i], " ", views[i+1]))
		} else {
			rows = append(rows, views[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
