package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goflex/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var segmentColor = map[section.Shape]color.RGBA{
	section.ShapeRectangle: {R: 59, G: 130, B: 246, A: 150},
	section.ShapeTriangle:  {R: 34, G: 197, B: 94, A: 150},
	section.ShapeParabolic: {R: 245, G: 158, B: 11, A: 150},
}

// ExportSliceDiagram exports the slice cross-section to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png appended.
func ExportSliceDiagram(data SliceDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Transformed Section"
	p.X.Label.Text = "Position along span (mm)"
	p.Y.Label.Text = "Height (mm)"

	top, err := plotter.NewPolygon(toXYs(data.TopOutline()))
	if err != nil {
		return err
	}
	top.Color = color.RGBA{R: 100, G: 116, B: 139, A: 200}
	top.LineStyle.Color = color.Black
	p.Add(top)

	for _, b := range data.Braces {
		for _, seg := range b.Segments {
			poly, err := plotter.NewPolygon(toXYs(data.Outline(b, seg, 24)))
			if err != nil {
				return err
			}
			poly.Color = segmentColor[seg.Shape]
			poly.LineStyle.Color = color.RGBA{R: 30, G: 41, B: 59, A: 255}
			p.Add(poly)
		}
	}

	// Composite centroid
	half := data.Span / 2
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -half, Y: data.Centroid},
		{X: half, Y: data.Centroid},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: half, Y: data.Centroid}},
		Labels: []string{fmt.Sprintf("ȳ=%.2fmm", data.Centroid)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	p.Legend.Add(fmt.Sprintf("EI = %.3f N·m²", data.EI/1e6))

	width := 10 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
