package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BasBBakkerIMF/imfcharts/internal/tui"
)

type GalleryCmd struct{}

func (g *GalleryCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
