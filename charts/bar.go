package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/BasBBakkerIMF/imfcharts/decor"
	"github.com/BasBBakkerIMF/imfcharts/theme"
)

// Bars renders a horizontal bar chart with one bar per labeled value,
// colors cycling the theme palette.
func Bars(values []Value, width int, th theme.Theme) string {
	barData := make([]barchart.BarData, 0, len(values))
	for i, v := range values {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%s)", v.Label, decor.FormatBreak(v.Value)),
			Values: []barchart.BarValue{
				{Name: v.Label, Value: v.Value, Style: th.SeriesStyle(i)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
