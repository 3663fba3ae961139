// Package theme bundles the styles a chart renders with. A Theme is an
// explicit value handed to renderers; nothing here touches process-wide
// state.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/BasBBakkerIMF/imfcharts/palette"
)

// Theme holds the style bundle for one chart. Series is the palette the
// renderer cycles through; Shade is the fill color for forecast windows.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Axis     lipgloss.Style
	Label    lipgloss.Style
	Series   []string
	Shade    lipgloss.Color
}

// SeriesStyle returns the line style for a series index, cycling the
// theme's palette.
func (t Theme) SeriesStyle(index int) lipgloss.Style {
	return palette.SeriesStyle(t.Series, index)
}

// WEO is the World Economic Outlook chart style: bold blue titles, italic
// blue subtitles, black axes and labels.
func WEO() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Blue)),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(palette.Blue)),
		Caption:  lipgloss.NewStyle(),
		Axis:     lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
		Series:   palette.WEO,
		Shade:    lipgloss.Color(palette.LightGrey),
	}
}

// WEOPanel is the WEO style for small multiples, which switches the titles
// to black.
func WEOPanel() Theme {
	t := WEO()
	t.Title = t.Title.Foreground(lipgloss.Color(palette.Black))
	t.Subtitle = t.Subtitle.Foreground(lipgloss.Color(palette.Black))
	return t
}

// IMF is the classic IMF chart style with the A4 palette.
func IMF() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.IMFBlue)),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(palette.IMFBlue)),
		Caption:  lipgloss.NewStyle().Italic(true),
		Axis:     lipgloss.NewStyle().Foreground(lipgloss.Color(palette.IMFLightGrey)),
		Label:    lipgloss.NewStyle(),
		Series:   palette.IMF,
		Shade:    lipgloss.Color(palette.IMFLightGrey),
	}
}

// IMFPanel is the classic IMF style for small multiples with the bar
// palette. The print style only shrinks font sizes, which has no cell
// equivalent.
func IMFPanel() Theme {
	t := IMF()
	t.Series = palette.IMFBar
	return t
}

// Named returns the preset for a CLI-friendly name: weo, weo-panel, imf or
// imf-panel.
func Named(name string) (Theme, error) {
	switch name {
	case "weo":
		return WEO(), nil
	case "weo-panel":
		return WEOPanel(), nil
	case "imf":
		return IMF(), nil
	case "imf-panel":
		return IMFPanel(), nil
	default:
		return Theme{}, fmt.Errorf("theme: unknown preset %q", name)
	}
}

// Names lists the presets Named accepts, in display order.
func Names() []string {
	return []string{"weo", "weo-panel", "imf", "imf-panel"}
}
