package main

import (
	"github.com/alecthomas/kong"

	"github.com/BasBBakkerIMF/imfcharts/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("imfcharts"),
		kong.Description("IMF and WEO styled terminal charts: axis break planning, themes, and demo figures."),
	)
	err := ctx.Run(&commands.Context{Width: commands.Cli.Width})
	ctx.FatalIfErrorf(err)
}
