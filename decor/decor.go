// Package decor renders chart furniture: title blocks, captions, legends,
// tick rulers and forecast annotations. Everything returns plain strings
// for the caller to compose around a chart view.
package decor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// TitleBlock renders a left-aligned title with an optional subtitle on the
// line beneath it.
func TitleBlock(th theme.Theme, title, subtitle string) string {
	if subtitle == "" {
		return th.Title.Render(title)
	}
	return th.Title.Render(title) + "\n" + th.Subtitle.Render(subtitle)
}

// Caption renders a source or footnote line.
func Caption(th theme.Theme, text string) string {
	return th.Caption.Render(text)
}

// Legend renders one swatch line per series name, colored in palette order.
func Legend(th theme.Theme, names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(th.SeriesStyle(i).Render(fmt.Sprintf("%c %s", runes.FullBlock, name)))
	}
	return b.String()
}

// ForecastNote renders the legend entry for a shaded forecast window.
func ForecastNote(th theme.Theme, from, to int) string {
	style := lipgloss.NewStyle().Foreground(th.Shade)
	return style.Render(fmt.Sprintf("░ forecast %d-%d", from, to))
}

// FormatBreak formats a break position without trailing zeros.
func FormatBreak(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
