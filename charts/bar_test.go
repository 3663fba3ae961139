package charts

import (
	"strings"
	"testing"

	"github.com/BasBBakkerIMF/imfcharts/theme"
)

func TestBars(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		width  int
	}{
		{
			name:   "empty values",
			values: nil,
			width:  80,
		},
		{
			name:   "single bar",
			values: []Value{{Label: "A", Value: 3}},
			width:  80,
		},
		{
			name: "category bars",
			values: []Value{
				{Label: "A", Value: 3},
				{Label: "B", Value: 1},
				{Label: "C", Value: 4},
				{Label: "D", Value: 2},
			},
			width: 100,
		},
		{
			name:   "narrow width",
			values: []Value{{Label: "A", Value: 10}},
			width:  40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Bars(tt.values, tt.width, theme.IMFPanel())

			if len(tt.values) > 0 && len(result) == 0 {
				t.Error("Bars() returned empty string for non-empty values")
			}
			for _, v := range tt.values {
				if !strings.Contains(result, v.Label) {
					t.Errorf("Bars() output does not contain label %s", v.Label)
				}
			}
		})
	}
}

func TestBarValues(t *testing.T) {
	values := []Value{{Label: "A", Value: 3}, {Label: "B", Value: 1}}
	got := BarValues(values)
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("BarValues() = %v, want [3 1]", got)
	}
}
