package decor

import (
	"strings"
	"testing"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

func TestTitleBlock(t *testing.T) {
	th := theme.WEO()

	t.Run("title and subtitle on separate lines", func(t *testing.T) {
		got := TitleBlock(th, "Figure 1.2. Unemployment Rate Change", "(Percentage point change)")
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("line count = %d, want 2", len(lines))
		}
		if !strings.Contains(lines[0], "Unemployment Rate Change") {
			t.Errorf("first line = %q, want it to contain the title", lines[0])
		}
		if !strings.Contains(lines[1], "(Percentage point change)") {
			t.Errorf("second line = %q, want it to contain the subtitle", lines[1])
		}
	})

	t.Run("no subtitle means one line", func(t *testing.T) {
		got := TitleBlock(th, "Title Only", "")
		if strings.Contains(got, "\n") {
			t.Errorf("TitleBlock() = %q, want a single line", got)
		}
	})
}

func TestCaption(t *testing.T) {
	got := Caption(theme.WEO(), "Source: IMF WEO and staff calculations.")
	if !strings.Contains(got, "Source: IMF WEO and staff calculations.") {
		t.Errorf("Caption() = %q, want it to contain the text", got)
	}
}

func TestLegend(t *testing.T) {
	names := []string{"BRA", "CHL", "COL"}
	got := Legend(theme.WEO(), names)

	lines := strings.Split(got, "\n")
	if len(lines) != len(names) {
		t.Fatalf("line count = %d, want %d", len(lines), len(names))
	}
	for i, name := range names {
		if !strings.Contains(lines[i], name) {
			t.Errorf("lines[%d] = %q, want it to contain %q", i, lines[i], name)
		}
	}

	if Legend(theme.WEO(), nil) != "" {
		t.Error("Legend(nil) should be empty")
	}
}

func TestForecastNote(t *testing.T) {
	got := ForecastNote(theme.WEO(), 2022, 2025)
	if !strings.Contains(got, "forecast 2022-2025") {
		t.Errorf("ForecastNote() = %q, want it to name the window", got)
	}
}

func TestFormatBreak(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-10, "-10"},
		{2.5, "2.5"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := FormatBreak(tt.v); got != tt.want {
			t.Errorf("FormatBreak(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestYTickRuler(t *testing.T) {
	th := theme.WEO()
	plan := breaks.Auto([]float64{-7, 23}) // major -10..30 by 10

	t.Run("one line per row", func(t *testing.T) {
		got := YTickRuler(plan, 20, th, DefaultTicks)
		if n := len(strings.Split(got, "\n")); n != 20 {
			t.Errorf("line count = %d, want 20", n)
		}
	})

	t.Run("major labels appear top to bottom", func(t *testing.T) {
		got := YTickRuler(plan, 20, th, DefaultTicks)
		for _, label := range []string{"-10", "0", "10", "20", "30"} {
			if !strings.Contains(got, label) {
				t.Errorf("ruler does not contain major label %q", label)
			}
		}
		if strings.Index(got, "30") > strings.Index(got, "-10") {
			t.Error("high limit label should appear before the low limit label")
		}
	})

	t.Run("minor rows carry a shorter unlabeled mark", func(t *testing.T) {
		got := YTickRuler(plan, 20, th, DefaultTicks)
		if !strings.Contains(got, strings.Repeat("─", DefaultTicks.MajorLen)) {
			t.Error("ruler has no major marks")
		}
		if strings.Count(got, "─") <= len(plan.Major)*DefaultTicks.MajorLen {
			t.Error("ruler has no minor marks")
		}
	})

	t.Run("empty plan renders nothing", func(t *testing.T) {
		if got := YTickRuler(breaks.Auto(nil), 10, th, DefaultTicks); got != "" {
			t.Errorf("YTickRuler(empty plan) = %q, want \"\"", got)
		}
	})

	t.Run("zero height renders nothing", func(t *testing.T) {
		if got := YTickRuler(plan, 0, th, DefaultTicks); got != "" {
			t.Errorf("YTickRuler(height 0) = %q, want \"\"", got)
		}
	})

	t.Run("constant series plan lands on a single row", func(t *testing.T) {
		got := YTickRuler(breaks.Auto([]float64{3, 3}), 5, th, DefaultTicks)
		lines := strings.Split(got, "\n")
		if len(lines) != 5 {
			t.Fatalf("line count = %d, want 5", len(lines))
		}
		if !strings.Contains(lines[0], "3") {
			t.Errorf("lines[0] = %q, want the single break on the top row", lines[0])
		}
	})
}

func TestXTickRuler(t *testing.T) {
	th := theme.WEO()
	plan := breaks.Auto([]float64{-7, 23})

	t.Run("labels span the width in order", func(t *testing.T) {
		got := XTickRuler(plan, 60, th)
		if !strings.Contains(got, "-10") || !strings.Contains(got, "30") {
			t.Errorf("ruler %q missing endpoint labels", got)
		}
		if strings.Index(got, "-10") > strings.Index(got, "30") {
			t.Error("low limit label should precede the high limit label")
		}
	})

	t.Run("colliding labels are dropped, not overwritten", func(t *testing.T) {
		got := XTickRuler(plan, 8, th)
		if strings.Contains(got, "-100") || strings.Contains(got, "030") {
			t.Errorf("ruler %q contains merged labels", got)
		}
	})

	t.Run("empty plan renders nothing", func(t *testing.T) {
		if got := XTickRuler(breaks.Auto(nil), 40, th); got != "" {
			t.Errorf("XTickRuler(empty plan) = %q, want \"\"", got)
		}
	})
}
