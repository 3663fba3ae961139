// Package palette defines the WEO and IMF chart color palettes.
package palette

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RGB converts 0-255 color components to a hex color string.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// World Economic Outlook colors.
var (
	Blue       = RGB(0, 98, 175)
	Red        = RGB(170, 31, 76)
	Gold       = RGB(245, 189, 71)
	Green      = RGB(73, 117, 39)
	LightGrey  = RGB(200, 200, 200)
	LightBlue  = RGB(141, 163, 210)
	LightRed   = RGB(209, 145, 131)
	LightGold  = RGB(249, 219, 161)
	LightGreen = RGB(162, 176, 143)
	DarkGrey   = RGB(150, 150, 150)
	Black      = RGB(0, 0, 0)
)

// IMF "classic" colors, used by the A4 chart palettes.
var (
	IMFBlue       = RGB(75, 130, 173)
	IMFGreen      = RGB(150, 186, 121)
	IMFRed        = RGB(192, 0, 80)
	IMFGrey       = RGB(166, 168, 172)
	IMFLightGreen = RGB(150, 215, 130)
	IMFLightGrey  = RGB(211, 211, 211)
	IMFLightRed   = RGB(238, 36, 0)
	IMFDarkRed    = RGB(144, 0, 0)
	IMFLightBlue  = RGB(202, 224, 251)
	IMFDarkBlue   = RGB(14, 16, 116)
	IMFPurple     = RGB(146, 60, 194)
	IMFOrange     = RGB(255, 133, 71)
)

// WEO is the series order of the WEO style guide.
var WEO = []string{
	Blue, Red, Gold, Green, LightGrey,
	LightBlue, LightRed, LightGold, LightGreen, DarkGrey,
}

// IMF is the A4 series order for line charts.
var IMF = []string{
	IMFBlue, IMFGreen, IMFGrey, IMFLightGreen,
	IMFLightGrey, IMFLightRed, IMFDarkRed,
}

// IMFBar is the A4 series order for bar charts, which adds red and black.
var IMFBar = []string{
	IMFBlue, IMFGreen, IMFRed, IMFGrey, Black,
	IMFLightGreen, IMFLightGrey, IMFLightRed, IMFDarkRed,
}

// SeriesColor returns the color for a series index, cycling through the
// palette.
func SeriesColor(palette []string, index int) lipgloss.Color {
	return lipgloss.Color(palette[index%len(palette)])
}

// SeriesStyle returns a lipgloss style with the foreground color for the
// given series index.
func SeriesStyle(palette []string, index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(palette, index))
}
