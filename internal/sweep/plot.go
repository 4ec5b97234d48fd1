package sweep

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var seriesColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// Plot draws the target's cosine bounds against yaw with the east/west
// thresholds and writes the chart to path. The extension picks the format.
func (r *Result) Plot(path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cue factors, front angle %v, threshold %v", r.Config.FrontAngle, r.Config.HUDThreshold)
	p.X.Label.Text = "Yaw (deg)"
	p.Y.Label.Text = "Cosine"
	p.Y.Min = -1
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		value func(Sample) float64
	}{
		{"X min", func(s Sample) float64 { return s.XMin }},
		{"X max", func(s Sample) float64 { return s.XMax }},
		{"Y min", func(s Sample) float64 { return s.YMin }},
		{"Y max", func(s Sample) float64 { return s.YMax }},
	}
	for i, sr := range series {
		yaws, values := r.Series(sr.value)
		if len(yaws) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(yaws))
		for j := range yaws {
			pts[j] = plotter.XY{X: yaws[j], Y: values[j]}
		}
		dots, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("%s series: %w", sr.name, err)
		}
		dots.Color = seriesColors[i%len(seriesColors)]
		dots.Radius = vg.Points(1.5)
		p.Add(dots)
		p.Legend.Add(sr.name, dots)
	}

	th := float64(r.Config.HUDThreshold)
	for _, y := range []float64{th, -th} {
		ref, err := plotter.NewLine(plotter.XYs{{X: r.Options.From, Y: y}, {X: r.Options.To, Y: y}})
		if err != nil {
			return err
		}
		ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		ref.Width = vg.Points(1)
		p.Add(ref)
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save sweep plot: %w", err)
	}
	return nil
}
