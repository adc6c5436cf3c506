package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sprint-burndown/burndown"
)

var (
	actualColor = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	idealColor  = color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}
)

// RenderPNG draws the ideal and actual series as a static image: actual
// as a solid marked line, ideal dashed, dates along the X axis.
func RenderPNG(result *burndown.Result, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Story Points Remaining"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	actualXYs := make(plotter.XYs, len(result.Dates))
	idealXYs := make(plotter.XYs, len(result.Dates))
	for i, d := range result.Dates {
		actualXYs[i] = plotter.XY{X: float64(d.Unix()), Y: result.Actual[i]}
		idealXYs[i] = plotter.XY{X: float64(d.Unix()), Y: result.Ideal[i]}
	}

	actualLine, actualPoints, err := plotter.NewLinePoints(actualXYs)
	if err != nil {
		return err
	}
	actualLine.Color = actualColor
	actualPoints.Color = actualColor

	idealLine, err := plotter.NewLine(idealXYs)
	if err != nil {
		return err
	}
	idealLine.Color = idealColor
	idealLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(actualLine, actualPoints, idealLine)
	p.Legend.Add("Actual", actualLine, actualPoints)
	p.Legend.Add("Ideal", idealLine)
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
