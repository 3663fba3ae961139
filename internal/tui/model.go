// Package tui is the interactive gallery of demo figures.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BasBBakkerIMF/imfcharts/internal/figures"
	"github.com/BasBBakkerIMF/imfcharts/internal/tables"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

type Model struct {
	width  int
	height int

	figure   int
	themeIdx int

	showPlan bool
	table    tables.Model

	figures []figures.Figure
	themes  []string
}

func New() Model {
	return Model{
		width:   80,
		figures: figures.All(),
		themes:  theme.Names(),
	}
}

func (m Model) currentTheme() theme.Theme {
	th, err := theme.Named(m.themes[m.themeIdx])
	if err != nil {
		return theme.WEO()
	}
	return th
}

// chartWidth leaves a margin inside the window and keeps narrow terminals
// usable.
func (m Model) chartWidth() int {
	width := m.width - 2
	if width < 40 {
		width = 40
	}
	return width
}

func (m Model) Init() tea.Cmd {
	return nil
}
