package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// ImageSize is the exported chart size in inches
type ImageSize struct {
	Width  float64
	Height float64
}

// DefaultImageSize matches an 8 × 6 inch landscape chart
var DefaultImageSize = ImageSize{Width: 8, Height: 6}

var quantityColors = map[beam.Quantity]color.Color{
	beam.ShearForce:    color.RGBA{R: 0, G: 0, B: 139, A: 255},
	beam.BendingMoment: color.RGBA{R: 178, G: 34, B: 34, A: 255},
	beam.Deflection:    color.RGBA{R: 0, G: 100, B: 0, A: 255},
}

// ExportSeries exports a sampled diagram as a line chart. The format follows the
// file extension (.png, .svg, .pdf); any other extension gets ".png" appended.
// It returns the path actually written.
func ExportSeries(s beam.Series, filename string, size ImageSize) (string, error) {
	if len(s.Points) == 0 {
		return "", fmt.Errorf("export %s: series has no points", s.Title)
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = s.Quantity.Label()
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	span := s.Points[len(s.Points)-1].X

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return "", err
	}
	axis.LineStyle.Width = vg.Points(1.5)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Filled diagram between the curve and the axis
	fill := make(plotter.XYs, 0, len(pts)+2)
	fill = append(fill, plotter.XY{X: 0, Y: 0})
	fill = append(fill, pts...)
	fill = append(fill, plotter.XY{X: span, Y: 0})
	area, err := plotter.NewPolygon(fill)
	if err != nil {
		return "", err
	}
	area.Color = color.RGBA{R: 100, G: 149, B: 237, A: 90}
	area.LineStyle.Width = 0
	p.Add(area)

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = quantityColors[s.Quantity]
	p.Add(curve)

	// Label the extremes
	hi, lo := s.Max(), s.Min()
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: hi.X, Y: hi.Y}, {X: lo.X, Y: lo.Y}},
		Labels: []string{
			fmt.Sprintf("%.2f %s", hi.Y, s.Quantity.Unit()),
			fmt.Sprintf("%.2f %s", lo.Y, s.Quantity.Unit()),
		},
	})
	if err != nil {
		return "", err
	}
	p.Add(labels)

	width := vg.Length(size.Width) * vg.Inch
	height := vg.Length(size.Height) * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// QuantityFilename inserts the quantity into a filename, e.g. "out/beam.png" →
// "out/beam_moment.png", so several diagrams can be exported from one name
func QuantityFilename(filename string, q beam.Quantity) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	var suffix string
	switch q {
	case beam.ShearForce:
		suffix = "shear"
	case beam.BendingMoment:
		suffix = "moment"
	case beam.Deflection:
		suffix = "deflection"
	default:
		suffix = strings.ToLower(strings.ReplaceAll(q.String(), " ", "-"))
	}
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}
