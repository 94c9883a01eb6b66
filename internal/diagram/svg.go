package diagram

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/alexiusacademia/goflex/internal/section"
)

const (
	viewWidth   = 700
	viewPadding = 24
	// spans up to this width are drawn against a fixed reference width
	viewReferenceSpan = 500.0
)

var segmentStyle = map[section.Shape]string{
	section.ShapeRectangle: "fill:#3b82f6;fill-opacity:0.55;stroke:#94a3b8",
	section.ShapeTriangle:  "fill:#22c55e;fill-opacity:0.55;stroke:#94a3b8",
	section.ShapeParabolic: "fill:#f59e0b;fill-opacity:0.55;stroke:#94a3b8",
}

// viewport maps slice coordinates (mm) to pixels
type viewport struct {
	scale   float64
	centerX float64
	baseY   float64
}

func (v viewport) px(p Point) (int, int) {
	return int(math.Round(v.centerX + p.X*v.scale)), int(math.Round(v.baseY - p.Y*v.scale))
}

// RenderSVG draws the slice to scale: the top layer spanning the full width,
// each brace standing on it at its offset, and the composite centroid.
func RenderSVG(w io.Writer, data SliceDiagramData) error {
	if data.Span <= 0 {
		return errors.New("diagram: span must be positive")
	}

	span := data.Span
	baseSpan := viewReferenceSpan
	if span > viewReferenceSpan {
		baseSpan = span * 1.2
	}
	totalH := math.Max(data.TotalHeight(), 1)

	scale := (viewWidth - 2*viewPadding) / baseSpan
	spanDraw := math.Min(span*scale, viewWidth-2*viewPadding)
	offsetX := (viewWidth - spanDraw) / 2
	viewHeight := 2*viewPadding + math.Max(totalH*scale, viewPadding)

	vp := viewport{scale: scale, centerX: offsetX + spanDraw/2, baseY: viewHeight - viewPadding}

	height := int(math.Ceil(viewHeight))
	canvas := svg.New(w)
	canvas.Startview(viewWidth, height, 0, 0, viewWidth, height)
	canvas.Rect(0, 0, viewWidth, height, "fill:#ffffff")

	left, right, base := int(math.Round(offsetX)), int(math.Round(offsetX+spanDraw)), int(math.Round(vp.baseY))
	canvas.Line(left, base, right, base, "stroke:#334155;stroke-width:1")
	canvas.Line(left, base, left, int(math.Round(vp.baseY-totalH*scale)), "stroke:#334155;stroke-width:1")

	drawPolygon(canvas, vp, data.TopOutline(), "fill:#64748b;fill-opacity:0.8;stroke:#334155")

	canvas.Gid("braces")
	for _, b := range data.Braces {
		for _, seg := range b.Segments {
			drawPolygon(canvas, vp, data.Outline(b, seg, 12), segmentStyle[seg.Shape])
		}
	}
	canvas.Gend()

	_, cy := vp.px(Point{0, data.Centroid})
	canvas.Line(left, cy, right, cy, "stroke:#dc2626;stroke-width:1;stroke-dasharray:5,3")
	canvas.Text(right, cy-4, fmt.Sprintf("ȳ = %.2f mm", data.Centroid), "font-size:11px;text-anchor:end;fill:#dc2626")

	reference := "500 mm reference"
	if span > viewReferenceSpan {
		reference = fmt.Sprintf("%.0f mm span (+20%%)", baseSpan)
	}
	canvas.Text(viewPadding, viewPadding/2+4,
		fmt.Sprintf("Span: %.0f mm (%s) · Total height: %.1f mm · Braces: %d", span, reference, data.TotalHeight(), len(data.Braces)),
		"font-size:11px;fill:#334155")

	canvas.End()
	return nil
}

func drawPolygon(canvas *svg.SVG, vp viewport, pts []Point, style string) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = vp.px(p)
	}
	canvas.Polygon(xs, ys, style)
}
