package section

import (
	"fmt"
	"strings"
)

// Shape selects the formula used to evaluate a segment's properties.
// The zero value is ShapeNone, an inert placeholder.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeRectangle
	ShapeTriangle
	ShapeParabolic // apex-down parabola
)

var shapeNames = map[Shape]string{
	ShapeNone:      "none",
	ShapeRectangle: "rectangle",
	ShapeTriangle:  "triangle",
	ShapeParabolic: "parabolic",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Valid reports whether s is one of the recognized shapes.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape converts a shape name such as "triangle" into a Shape
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for shape, n := range shapeNames {
		if n == key {
			return shape, nil
		}
	}
	return ShapeNone, fmt.Errorf("%w: %q", ErrInvalidShape, name)
}

// Properties holds the geometric properties of a single shape.
// Centroid is measured from the shape's own base, Inertia is about its own centroid.
type Properties struct {
	Area     float64 // mm²
	Centroid float64 // mm
	Inertia  float64 // mm⁴
}

// Segment is one layer of a brace
type Segment struct {
	Shape   Shape
	Height  float64 // mm
	Modulus float64 // N/mm²
}

// active reports whether the segment takes part in the stack.
// A NaN height stays active so that validation reports it.
func (s Segment) active() bool {
	return s.Shape != ShapeNone && !(s.Height <= 0)
}

// BreadthSpec describes how the intercept breadth of a brace is obtained.
// It is either Direct or Derived.
type BreadthSpec interface {
	resolve(span float64) (float64, error)
}

// Direct supplies the intercept breadth b explicitly.
type Direct struct {
	Breadth float64 // mm
}

// Derived computes the intercept breadth from the plan width and the
// inclination of the brace relative to the span.
type Derived struct {
	PlanWidth float64 // mm
	AngleDeg  float64 // inclination φ in degrees, 90 = perpendicular to the span
}

// Brace is a stack of up to three segments, ordered bottom to top.
type Brace struct {
	Breadth BreadthSpec
	Bottom  Segment
	Middle  Segment
	Top     Segment
}

// stack returns the segments in bottom → top order with their labels
func (b Brace) stack() []labeledSegment {
	return []labeledSegment{
		{"bottom", b.Bottom},
		{"middle", b.Middle},
		{"top", b.Top},
	}
}

type labeledSegment struct {
	label string
	Segment
}

// TransformedSegment holds the per-segment quantities of a brace transformation
type TransformedSegment struct {
	Label   string
	Shape   Shape
	Height  float64 // mm
	Breadth float64 // mm

	// Untransformed properties; Centroid is absolute (from the base of the stack)
	Area     float64 // mm²
	Centroid float64 // mm
	Inertia  float64 // mm⁴, about own centroid

	ModularRatio       float64 // segment modulus / reference modulus
	TransformedArea    float64 // mm²
	TransformedInertia float64 // mm⁴, about own centroid
}

// BraceResult holds the transformed section of a single brace
type BraceResult struct {
	Breadth             float64 // mm
	Height              float64 // total height of the active segments (mm)
	TransformedArea     float64 // mm²
	TransformedCentroid float64 // mm from the base of the stack
	TransformedInertia  float64 // mm⁴, about TransformedCentroid
	Segments            []TransformedSegment
}

// EI returns the flexural rigidity of the brace alone, referenced to refModulus.
func (r *BraceResult) EI(refModulus float64) float64 {
	return refModulus * r.TransformedInertia
}

// Slice is the full cross-section: a full-width top layer plus braces.
type Slice struct {
	Span         float64 // available width (mm)
	TopThickness float64 // mm
	TopModulus   float64 // reference modulus (N/mm²)
	Braces       []Brace
}

// SliceResult holds the composite section of a slice
type SliceResult struct {
	Centroid           float64 // mm
	TransformedInertia float64 // mm⁴
	EI                 float64 // N·mm²
	Top                Properties
	Braces             []BraceResult
}
