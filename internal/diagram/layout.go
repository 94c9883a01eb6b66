package diagram

import (
	"github.com/alexiusacademia/goflex/internal/section"
)

// Point represents a 2D coordinate in slice space: X from the span centre,
// Y from the underside of the top layer (mm)
type Point struct {
	X float64
	Y float64
}

// SegmentBand is one brace segment positioned in its brace
type SegmentBand struct {
	Label  string
	Shape  section.Shape
	Base   float64 // mm above the top layer
	Height float64 // mm
}

// BraceShape is a brace positioned along the span
type BraceShape struct {
	Offset   float64 // centre, relative to the span centre (mm)
	Width    float64 // intercept breadth (mm)
	Height   float64 // mm
	EI       float64 // N·mm², brace alone
	Segments []SegmentBand
}

// SliceDiagramData holds data for drawing a slice cross-section
type SliceDiagramData struct {
	Span         float64 // mm
	TopThickness float64 // mm
	Centroid     float64 // mm from the base of the top layer
	Inertia      float64 // mm⁴
	EI           float64 // N·mm²
	Braces       []BraceShape
}

// TotalHeight returns the top thickness plus the tallest brace
func (d SliceDiagramData) TotalHeight() float64 {
	var maxH float64
	for _, b := range d.Braces {
		maxH = max(maxH, b.Height)
	}
	return d.TopThickness + maxH
}

// BraceOffsets spreads count braces of the given width across the span and
// returns their centre offsets relative to the span centre. When the braces
// do not fit they are packed edge to edge from the left.
func BraceOffsets(span, width float64, count int) []float64 {
	n := max(count, 1)
	offsets := make([]float64, n)
	halfSpan := span / 2

	total := width * float64(n)
	if total >= span {
		start := -halfSpan + width/2
		for i := range offsets {
			offsets[i] = start + float64(i)*width
		}
		return offsets
	}

	gap := (span - total) / float64(n+1)
	start := -halfSpan + gap + width/2
	step := width + gap
	for i := range offsets {
		offsets[i] = start + float64(i)*step
	}
	return offsets
}

// NewSliceDiagramData positions the braces of a computed slice. Braces are
// spread evenly using the widest resolved breadth.
func NewSliceDiagramData(s section.Slice, res *section.SliceResult) SliceDiagramData {
	data := SliceDiagramData{
		Span:         s.Span,
		TopThickness: s.TopThickness,
		Centroid:     res.Centroid,
		Inertia:      res.TransformedInertia,
		EI:           res.EI,
	}
	if len(res.Braces) == 0 {
		return data
	}

	var width float64
	for _, br := range res.Braces {
		width = max(width, br.Breadth)
	}
	offsets := BraceOffsets(s.Span, width, len(res.Braces))

	for i, br := range res.Braces {
		shape := BraceShape{
			Offset: offsets[i],
			Width:  br.Breadth,
			Height: br.Height,
			EI:     br.EI(s.TopModulus),
		}
		var base float64
		for _, seg := range br.Segments {
			shape.Segments = append(shape.Segments, SegmentBand{
				Label:  seg.Label,
				Shape:  seg.Shape,
				Base:   base,
				Height: seg.Height,
			})
			base += seg.Height
		}
		data.Braces = append(data.Braces, shape)
	}
	return data
}

// TopOutline returns the outline of the top layer
func (d SliceDiagramData) TopOutline() []Point {
	half := d.Span / 2
	return []Point{{-half, 0}, {half, 0}, {half, d.TopThickness}, {-half, d.TopThickness}}
}

// Outline returns the polygon of a segment of brace b, in slice space.
// Curved edges are approximated with steps points per side.
func (d SliceDiagramData) Outline(b BraceShape, seg SegmentBand, steps int) []Point {
	y0 := d.TopThickness + seg.Base
	half := b.Width / 2

	switch seg.Shape {
	case section.ShapeTriangle:
		return []Point{{b.Offset - half, y0}, {b.Offset + half, y0}, {b.Offset, y0 + seg.Height}}
	case section.ShapeParabolic:
		steps = max(steps, 2)
		pts := make([]Point, 0, 2*steps+1)
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			pts = append(pts, Point{b.Offset + half*WidthFraction(seg.Shape, t), y0 + t*seg.Height})
		}
		for k := steps - 1; k >= 0; k-- {
			t := float64(k) / float64(steps)
			pts = append(pts, Point{b.Offset - half*WidthFraction(seg.Shape, t), y0 + t*seg.Height})
		}
		return pts
	default:
		return []Point{
			{b.Offset - half, y0}, {b.Offset + half, y0},
			{b.Offset + half, y0 + seg.Height}, {b.Offset - half, y0 + seg.Height},
		}
	}
}

// WidthFraction returns the width of an upright shape at relative height t
// (0 at its base, 1 at its top) as a fraction of the base breadth
func WidthFraction(shape section.Shape, t float64) float64 {
	switch shape {
	case section.ShapeRectangle:
		return 1
	case section.ShapeTriangle:
		return 1 - t
	case section.ShapeParabolic:
		return 1 - t*t
	}
	return 0
}
