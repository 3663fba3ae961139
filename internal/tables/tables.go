// Package tables presents a break plan as a filterable terminal table.
package tables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/decor"
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
	limits          breaks.Limits
}

// BreakPlan builds a table with one row per break position, majors and
// minors interleaved in axis order.
func BreakPlan(plan breaks.Plan) Model {
	type row struct {
		position float64
		kind     string
	}
	rows := make([]row, 0, len(plan.Major)+len(plan.Minor))
	for _, v := range plan.Major {
		rows = append(rows, row{position: v, kind: "major"})
	}
	for _, v := range plan.Minor {
		rows = append(rows, row{position: v, kind: "minor"})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].position < rows[j].position })

	longestPosition := 0
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		position := decor.FormatBreak(r.position)
		if len(position) > longestPosition {
			longestPosition = len(position)
		}
		tableRows = append(tableRows, table.NewRow(table.RowData{
			"position": position,
			"kind":     r.kind,
		}))
	}

	columns := []table.Column{
		table.NewColumn("position", "Position", max(longestPosition+1, 9)).WithFiltered(true),
		table.NewColumn("kind", "Kind", 6).WithFiltered(true),
	}

	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(tableRows),
		filterTextInput: textinput.New(),
		limits:          plan.Limits,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString(fmt.Sprintf("\nlimits: [%s, %s]",
		decor.FormatBreak(m.limits.Low), decor.FormatBreak(m.limits.High)))
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
