package tui

import (
	"fmt"
	"strings"

	"github.com/BasBBakkerIMF/imfcharts/internal/figures"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	if m.showPlan {
		s.WriteString(m.table.View())
	} else {
		s.WriteString(figures.Render(m.figures[m.figure], m.chartWidth(), m.currentTheme()))
	}

	s.WriteString("\n")
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf("figure %d/%d   theme: %s",
		m.figure+1, len(m.figures), m.themes[m.themeIdx])
	return StatusStyle.Width(m.width).Render(status)
}

func (m Model) renderHelpBar() string {
	if m.showPlan {
		return HelpStyle.Render("b/esc: back to chart   /: filter   q: quit")
	}
	return HelpStyle.Render("left/right: figure   t: theme   b: break table   q: quit")
}
