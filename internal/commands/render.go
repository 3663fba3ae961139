package commands

import (
	"fmt"

	"github.com/BasBBakkerIMF/imfcharts/internal/figures"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// resolveTheme picks the preset and overlays an optional YAML config file.
func resolveTheme(name, configPath string) (theme.Theme, error) {
	th, err := theme.Named(name)
	if err != nil {
		return theme.Theme{}, err
	}
	if configPath == "" {
		return th, nil
	}
	cfg, err := theme.LoadFile(configPath)
	if err != nil {
		return theme.Theme{}, err
	}
	return cfg.Apply(th), nil
}

type LineCmd struct {
	Theme       string `help:"Theme preset." default:"weo" enum:"weo,weo-panel,imf,imf-panel"`
	ThemeConfig string `name:"theme-config" help:"YAML file of theme color overrides." type:"existingfile" optional:""`
}

func (l *LineCmd) Run(ctx *Context) error {
	return renderFigure(figures.Unemployment(), l.Theme, l.ThemeConfig, ctx)
}

type BarCmd struct {
	Theme       string `help:"Theme preset." default:"imf-panel" enum:"weo,weo-panel,imf,imf-panel"`
	ThemeConfig string `name:"theme-config" help:"YAML file of theme color overrides." type:"existingfile" optional:""`
}

func (b *BarCmd) Run(ctx *Context) error {
	return renderFigure(figures.CategoryBars(), b.Theme, b.ThemeConfig, ctx)
}

type PanelCmd struct {
	Theme       string `help:"Theme preset." default:"weo-panel" enum:"weo,weo-panel,imf,imf-panel"`
	ThemeConfig string `name:"theme-config" help:"YAML file of theme color overrides." type:"existingfile" optional:""`
}

func (p *PanelCmd) Run(ctx *Context) error {
	return renderFigure(figures.GDPPanel(), p.Theme, p.ThemeConfig, ctx)
}

func renderFigure(fig figures.Figure, themeName, configPath string, ctx *Context) error {
	th, err := resolveTheme(themeName, configPath)
	if err != nil {
		return err
	}
	fmt.Println(figures.Render(fig, chartWidth(ctx), th))
	return nil
}
