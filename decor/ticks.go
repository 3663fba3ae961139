package decor

import (
	"fmt"
	"math"
	"strings"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// TickStyle sets the inward tick mark lengths, in cells.
type TickStyle struct {
	MajorLen int
	MinorLen int
}

// DefaultTicks is the line chart tick style; BarTicks uses the shorter
// marks bar charts get.
var (
	DefaultTicks = TickStyle{MajorLen: 2, MinorLen: 1}
	BarTicks     = TickStyle{MajorLen: 1, MinorLen: 1}
)

// YTickRuler renders a gutter of height rows to sit left of a chart:
// labeled marks for major breaks, unlabeled shorter marks for minors. Each
// break lands on the row found by projecting the plan's limits onto the
// rows, high limit at the top. The result is "" when the plan is empty.
func YTickRuler(plan breaks.Plan, height int, th theme.Theme, ts TickStyle) string {
	if height < 1 || len(plan.Major) == 0 {
		return ""
	}

	span := plan.Limits.High - plan.Limits.Low
	rowOf := func(v float64) int {
		if span == 0 || height == 1 {
			return 0
		}
		return int(math.Round((plan.Limits.High - v) / span * float64(height-1)))
	}

	type tick struct {
		label string
		major bool
	}
	ticks := make(map[int]tick)
	for _, v := range plan.Minor {
		ticks[rowOf(v)] = tick{}
	}
	labelW := 0
	for _, v := range plan.Major {
		label := FormatBreak(v)
		if len(label) > labelW {
			labelW = len(label)
		}
		ticks[rowOf(v)] = tick{label: label, major: true}
	}

	lines := make([]string, height)
	for row := range lines {
		tk, ok := ticks[row]
		switch {
		case !ok:
			lines[row] = strings.Repeat(" ", labelW+1+ts.MajorLen)
		case tk.major:
			lines[row] = th.Label.Render(fmt.Sprintf("%*s ", labelW, tk.label)) +
				th.Axis.Render(strings.Repeat("─", ts.MajorLen))
		default:
			pad := labelW + 1 + ts.MajorLen - ts.MinorLen
			lines[row] = strings.Repeat(" ", pad) +
				th.Axis.Render(strings.Repeat("─", ts.MinorLen))
		}
	}
	return strings.Join(lines, "\n")
}

// XTickRuler renders a one-line horizontal value axis: major break labels
// placed by projecting the plan's limits onto width cells. Labels that
// would collide with an earlier one are dropped.
func XTickRuler(plan breaks.Plan, width int, th theme.Theme) string {
	if width < 1 || len(plan.Major) == 0 {
		return ""
	}

	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}

	span := plan.Limits.High - plan.Limits.Low
	for _, v := range plan.Major {
		label := []rune(FormatBreak(v))
		if len(label) > width {
			continue
		}
		col := 0
		if span != 0 {
			col = int(math.Round((v - plan.Limits.Low) / span * float64(width-1)))
		}
		if col+len(label) > width {
			col = width - len(label)
		}
		if occupied(cells, col, len(label)) {
			continue
		}
		copy(cells[col:], label)
	}
	return th.Label.Render(string(cells))
}

// occupied reports whether any cell in [col, col+n), or the one cell of
// padding either side, already holds a label rune.
func occupied(cells []rune, col, n int) bool {
	lo := max(col-1, 0)
	hi := min(col+n+1, len(cells))
	for _, c := range cells[lo:hi] {
		if c != ' ' {
			return true
		}
	}
	return false
}
