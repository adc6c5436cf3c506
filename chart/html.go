package chart

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sprint-burndown/burndown"
)

// RenderHTML writes the interactive chart page: same two series as the
// PNG, hover tooltips over the day axis.
func RenderHTML(result *burndown.Result, title, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Story Points Remaining"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	dates := make([]string, len(result.Dates))
	actualData := make([]opts.LineData, len(result.Dates))
	idealData := make([]opts.LineData, len(result.Dates))
	for i, d := range result.Dates {
		dates[i] = d.Format("2006-01-02")
		actualData[i] = opts.LineData{Value: result.Actual[i]}
		idealData[i] = opts.LineData{Value: result.Ideal[i]}
	}

	line.SetXAxis(dates).
		AddSeries("Actual", actualData,
			charts.WithLineStyleOpts(opts.LineStyle{Color: actualColorHex}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: actualColorHex})).
		AddSeries("Ideal", idealData,
			charts.WithLineStyleOpts(opts.LineStyle{Color: idealColorHex, Type: "dashed"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: idealColorHex}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
