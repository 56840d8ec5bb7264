// Package plotting draws the comparison charts of real and synthetic data.
package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one labelled sample of a histogram overlay. A nil Fill picks
// the next palette color.
type Series struct {
	Label  string
	Values []float64
	Fill   color.Color
}

var palette = []color.Color{
	color.RGBA{R: 50, G: 50, B: 255, A: 120},
	color.RGBA{R: 255, G: 80, B: 50, A: 120},
	color.RGBA{R: 40, G: 160, B: 60, A: 120},
}

// Histograms overlays the normalized histograms of every series and saves
// the plot to path. The image format follows the file extension.
func Histograms(path, title string, bins int, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = title
	p.Y.Label.Text = "density"

	for i, s := range series {
		h, err := plotter.NewHist(plotter.Values(s.Values), bins)
		if err != nil {
			return err
		}
		h.Normalize(1)
		h.FillColor = s.Fill
		if h.FillColor == nil {
			h.FillColor = palette[i%len(palette)]
		}
		p.Add(h)
		p.Legend.Add(s.Label, h)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
