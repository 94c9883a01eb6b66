package section

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeProperties(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		b, h     float64
		expected Properties
	}{
		{"rectangle", ShapeRectangle, 20, 5, Properties{Area: 100, Centroid: 2.5, Inertia: 208.33333333333334}},
		{"triangle", ShapeTriangle, 20, 7, Properties{Area: 70, Centroid: 7.0 / 3.0, Inertia: 20 * 343.0 / 36}},
		{"parabolic", ShapeParabolic, 30, 8, Properties{Area: 160, Centroid: 3, Inertia: 19.0 / 480.0 * 30 * 512}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShapeProperties(tt.shape, tt.b, tt.h)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Area, got.Area, 1e-9)
			assert.InDelta(t, tt.expected.Centroid, got.Centroid, 1e-12)
			assert.InDelta(t, tt.expected.Inertia, got.Inertia, 1e-9)
		})
	}
}

func TestShapeProperties_AreaAndCentroidBounds(t *testing.T) {
	dims := [][2]float64{{1, 1}, {0.5, 12}, {250, 0.01}, {20, 7}}

	for _, d := range dims {
		b, h := d[0], d[1]

		rect, err := ShapeProperties(ShapeRectangle, b, h)
		require.NoError(t, err)
		assert.Equal(t, b*h, rect.Area)

		tri, err := ShapeProperties(ShapeTriangle, b, h)
		require.NoError(t, err)
		assert.Equal(t, b*h/2, tri.Area)

		par, err := ShapeProperties(ShapeParabolic, b, h)
		require.NoError(t, err)
		assert.InDelta(t, 2.0/3.0*b*h, par.Area, 1e-12*b*h)

		for _, p := range []Properties{rect, tri, par} {
			assert.Greater(t, p.Centroid, 0.0)
			assert.Less(t, p.Centroid, h)
		}
	}
}

func TestShapeProperties_None(t *testing.T) {
	for _, dims := range [][2]float64{{20, 5}, {0, 0}, {-1, math.NaN()}, {math.Inf(1), -3}} {
		got, err := ShapeProperties(ShapeNone, dims[0], dims[1])
		require.NoError(t, err)
		assert.Equal(t, Properties{}, got)
	}
}

func TestShapeProperties_Errors(t *testing.T) {
	_, err := ShapeProperties(Shape(42), 10, 10)
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.EqualError(t, err, "unsupported shape: shape(42)")

	tests := []struct {
		name  string
		b, h  float64
		param string
	}{
		{"zero breadth", 0, 5, "breadth"},
		{"negative height", 10, -2, "height"},
		{"NaN breadth", math.NaN(), 5, "breadth"},
		{"infinite height", 10, math.Inf(1), "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShapeProperties(ShapeRectangle, tt.b, tt.h)
			require.ErrorIs(t, err, ErrInvalidInput)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.param, inputErr.Param)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestParseShape(t *testing.T) {
	for _, shape := range []Shape{ShapeNone, ShapeRectangle, ShapeTriangle, ShapeParabolic} {
		got, err := ParseShape(shape.String())
		require.NoError(t, err)
		assert.Equal(t, shape, got)
	}

	got, err := ParseShape("  Triangle ")
	require.NoError(t, err)
	assert.Equal(t, ShapeTriangle, got)

	_, err = ParseShape("circle")
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Equal(t, "shape(9)", Shape(9).String())
}

func TestTopSection(t *testing.T) {
	top, err := TopSection(500, 4)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, top.Area)
	assert.Equal(t, 2.0, top.Centroid)
	assert.InDelta(t, 2666.6666666666665, top.Inertia, 1e-9)

	_, err = TopSection(500, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = TopSection(math.NaN(), 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterceptBreadth(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		b, err := InterceptBreadth(Brace{Breadth: Direct{Breadth: 35}}, 500)
		require.NoError(t, err)
		assert.Equal(t, 35.0, b)
	})

	t.Run("direct clamped to span", func(t *testing.T) {
		b, err := InterceptBreadth(Brace{Breadth: Direct{Breadth: 750}}, 500)
		require.NoError(t, err)
		assert.Equal(t, 500.0, b)
	})

	t.Run("derived at 45 degrees", func(t *testing.T) {
		b, err := InterceptBreadth(Brace{Breadth: Derived{PlanWidth: 10, AngleDeg: 45}}, 500)
		require.NoError(t, err)
		assert.InDelta(t, 14.142135623730951, b, 1e-9)
	})

	t.Run("derived clamped to span", func(t *testing.T) {
		b, err := InterceptBreadth(Brace{Breadth: Derived{PlanWidth: 10, AngleDeg: 45}}, 12)
		require.NoError(t, err)
		assert.Equal(t, 12.0, b)
	})

	t.Run("perpendicular", func(t *testing.T) {
		b, err := InterceptBreadth(Brace{Breadth: Derived{PlanWidth: 20, AngleDeg: 90}}, 500)
		require.NoError(t, err)
		assert.Equal(t, 20.0, b)
	})

	t.Run("shallow angle", func(t *testing.T) {
		_, err := InterceptBreadth(Brace{Breadth: Derived{PlanWidth: 10, AngleDeg: 0.01}}, 500)
		assert.ErrorIs(t, err, ErrShallowAngle)

		_, err = InterceptBreadth(Brace{Breadth: Derived{PlanWidth: 10, AngleDeg: 180}}, 500)
		assert.ErrorIs(t, err, ErrShallowAngle)
	})

	errTests := []struct {
		name  string
		brace Brace
		span  float64
		param string
	}{
		{"missing breadth", Brace{}, 500, "brace breadth b"},
		{"zero direct breadth", Brace{Breadth: Direct{}}, 500, "brace breadth b"},
		{"zero span", Brace{Breadth: Direct{Breadth: 10}}, 0, "span"},
		{"negative plan width", Brace{Breadth: Derived{PlanWidth: -1, AngleDeg: 45}}, 500, "brace plan width"},
		{"zero angle", Brace{Breadth: Derived{PlanWidth: 10}}, 500, "brace angle"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InterceptBreadth(tt.brace, tt.span)
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.param, inputErr.Param)
		})
	}
}
