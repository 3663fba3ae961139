// Package commands defines the imfcharts CLI.
package commands

import (
	"os"

	"golang.org/x/term"
)

// Context carries the settings every command shares.
type Context struct {
	Width int
}

var Cli struct {
	Width int `help:"Chart width in cells. Defaults to the terminal width." short:"w"`

	Breaks  BreaksCmd  `cmd:"" help:"Plan axis breaks for a series of values."`
	Line    LineCmd    `cmd:"" help:"Render the WEO line chart demo."`
	Bar     BarCmd     `cmd:"" help:"Render the IMF bar chart demo."`
	Panel   PanelCmd   `cmd:"" help:"Render the WEO GDP panel demo with forecast shading."`
	Gallery GalleryCmd `cmd:"" help:"Browse the demo figures interactively."`
}

// chartWidth resolves the width to render at: the explicit flag, the
// terminal, or 80 when neither is usable.
func chartWidth(ctx *Context) int {
	if ctx.Width > 0 {
		return ctx.Width
	}
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
