package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BasBBakkerIMF/imfcharts/internal/figures"
	"github.com/BasBBakkerIMF/imfcharts/internal/tables"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showPlan {
			switch msg.String() {
			case "b", "esc":
				m.showPlan = false
				return m, nil
			default:
				updated, cmd := m.table.Update(msg)
				if table, ok := updated.(tables.Model); ok {
					m.table = table
				}
				return m, cmd
			}
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "right", "l":
			m.figure = (m.figure + 1) % len(m.figures)
		case "left", "h":
			m.figure = (m.figure - 1 + len(m.figures)) % len(m.figures)
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		case "b":
			m.showPlan = true
			m.table = tables.BreakPlan(figures.Plan(m.figures[m.figure]))
		}
	}

	return m, nil
}
