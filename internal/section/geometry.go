package section

import (
	"fmt"
	"math"
)

// minSinPhi is the smallest |sin φ| for which the breadth is derived from the plan width
const minSinPhi = 1e-3

// ShapeProperties evaluates area, centroid (from the shape's own base) and
// second moment of area (about its own centroid) for an upright shape of
// breadth b and height h.
//
// ShapeNone short-circuits to zero properties without looking at b or h.
func ShapeProperties(shape Shape, b, h float64) (Properties, error) {
	if shape == ShapeNone {
		return Properties{}, nil
	}
	if !shape.Valid() {
		return Properties{}, fmt.Errorf("%w: %s", ErrInvalidShape, shape)
	}
	if err := requirePositive(b, "breadth"); err != nil {
		return Properties{}, err
	}
	if err := requirePositive(h, "height"); err != nil {
		return Properties{}, err
	}

	h3 := h * h * h

	switch shape {
	case ShapeRectangle:
		return Properties{Area: b * h, Centroid: h / 2, Inertia: b * h3 / 12}, nil
	case ShapeTriangle:
		return Properties{Area: b * h / 2, Centroid: h / 3, Inertia: b * h3 / 36}, nil
	case ShapeParabolic:
		return Properties{Area: 2.0 / 3.0 * b * h, Centroid: 3.0 / 8.0 * h, Inertia: 19.0 / 480.0 * b * h3}, nil
	}
	return Properties{}, fmt.Errorf("%w: %s", ErrInvalidShape, shape)
}

// TopSection computes the properties of the full-width top layer
func TopSection(span, thickness float64) (Properties, error) {
	if err := requirePositive(span, "span"); err != nil {
		return Properties{}, err
	}
	if err := requirePositive(thickness, "top thickness"); err != nil {
		return Properties{}, err
	}

	return Properties{
		Area:     span * thickness,
		Centroid: thickness / 2,
		Inertia:  span * thickness * thickness * thickness / 12,
	}, nil
}

// InterceptBreadth resolves the breadth of the brace footprint, clamped to [0, span]
func InterceptBreadth(brace Brace, span float64) (float64, error) {
	if err := requirePositive(span, "span"); err != nil {
		return 0, err
	}
	if brace.Breadth == nil {
		return 0, &InputError{Param: "brace breadth b"}
	}
	return brace.Breadth.resolve(span)
}

func (d Direct) resolve(span float64) (float64, error) {
	if err := requirePositive(d.Breadth, "brace breadth b"); err != nil {
		return 0, err
	}
	return clamp(d.Breadth, 0, span), nil
}

func (d Derived) resolve(span float64) (float64, error) {
	if err := requirePositive(d.PlanWidth, "brace plan width"); err != nil {
		return 0, err
	}
	if err := requirePositive(d.AngleDeg, "brace angle"); err != nil {
		return 0, err
	}

	sinPhi := math.Abs(math.Sin(degToRad(d.AngleDeg)))
	if sinPhi < minSinPhi {
		return 0, ErrShallowAngle
	}

	return clamp(d.PlanWidth/sinPhi, 0, span), nil
}

// requirePositive checks that value is finite and strictly positive
func requirePositive(value float64, param string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return &InputError{Param: param}
	}
	return nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}
