package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	braceModulus = 12 * 1000.0
	topModulus   = 10 * 1000.0
)

// defaultBrace mirrors the calculator defaults: 20 mm perpendicular brace,
// 5/5/7 mm segments with a triangular top.
func defaultBrace() Brace {
	return Brace{
		Breadth: Derived{PlanWidth: 20, AngleDeg: 90},
		Bottom:  Segment{Shape: ShapeRectangle, Height: 5, Modulus: braceModulus},
		Middle:  Segment{Shape: ShapeRectangle, Height: 5, Modulus: braceModulus},
		Top:     Segment{Shape: ShapeTriangle, Height: 7, Modulus: braceModulus},
	}
}

func relDelta(t *testing.T, expected, actual float64) {
	t.Helper()
	assert.InDelta(t, expected, actual, 1e-9*math.Abs(expected))
}

func TestTransformBrace_HomogeneousRectangle(t *testing.T) {
	brace := Brace{
		Breadth: Direct{Breadth: 30},
		Bottom:  Segment{Shape: ShapeRectangle, Height: 4, Modulus: topModulus},
		Middle:  Segment{Shape: ShapeRectangle, Height: 6, Modulus: topModulus},
		Top:     Segment{Shape: ShapeRectangle, Height: 10, Modulus: topModulus},
	}

	res, err := TransformBrace(brace, 500, topModulus)
	require.NoError(t, err)

	whole, err := ShapeProperties(ShapeRectangle, 30, 20)
	require.NoError(t, err)

	assert.Equal(t, 20.0, res.Height)
	relDelta(t, whole.Area, res.TransformedArea)
	relDelta(t, whole.Centroid, res.TransformedCentroid)
	relDelta(t, whole.Inertia, res.TransformedInertia)
}

func TestTransformBrace_ParallelAxis(t *testing.T) {
	brace := Brace{
		Breadth: Direct{Breadth: 20},
		Bottom:  Segment{Shape: ShapeRectangle, Height: 5, Modulus: topModulus},
		Middle:  Segment{Shape: ShapeRectangle, Height: 5, Modulus: topModulus},
	}

	res, err := TransformBrace(brace, 500, topModulus)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, res.TransformedArea, 1e-12)
	assert.InDelta(t, 5.0, res.TransformedCentroid, 1e-12)
	assert.InDelta(t, 1666.67, res.TransformedInertia, 0.01)

	var sum float64
	for _, seg := range res.Segments {
		d := res.TransformedCentroid - seg.Centroid
		sum += seg.TransformedInertia + seg.TransformedArea*d*d
	}
	relDelta(t, sum, res.TransformedInertia)
}

func TestTransformBrace_Segments(t *testing.T) {
	res, err := TransformBrace(defaultBrace(), 500, topModulus)
	require.NoError(t, err)

	require.Len(t, res.Segments, 3)
	assert.Equal(t, []string{"bottom", "middle", "top"},
		[]string{res.Segments[0].Label, res.Segments[1].Label, res.Segments[2].Label})

	// absolute centroids follow the running base
	assert.InDelta(t, 2.5, res.Segments[0].Centroid, 1e-12)
	assert.InDelta(t, 7.5, res.Segments[1].Centroid, 1e-12)
	assert.InDelta(t, 10+7.0/3.0, res.Segments[2].Centroid, 1e-12)

	for _, seg := range res.Segments {
		assert.InDelta(t, 1.2, seg.ModularRatio, 1e-15)
		assert.Equal(t, 20.0, seg.Breadth)
		relDelta(t, seg.ModularRatio*seg.Area, seg.TransformedArea)
	}

	assert.Equal(t, 20.0, res.Breadth)
	assert.Equal(t, 17.0, res.Height)
	relDelta(t, 324, res.TransformedArea)
	relDelta(t, 6.901234567901234, res.TransformedCentroid)
	relDelta(t, 5574.839506172841, res.TransformedInertia)
	relDelta(t, 5574.839506172841*topModulus, res.EI(topModulus))
}

func TestTransformBrace_SkipsInactiveSegments(t *testing.T) {
	brace := Brace{
		Breadth: Direct{Breadth: 20},
		Bottom:  Segment{Shape: ShapeNone, Height: 50, Modulus: braceModulus},
		Middle:  Segment{Shape: ShapeRectangle, Height: 0, Modulus: braceModulus},
		Top:     Segment{Shape: ShapeRectangle, Height: 5, Modulus: braceModulus},
	}

	res, err := TransformBrace(brace, 500, topModulus)
	require.NoError(t, err)

	require.Len(t, res.Segments, 1)
	assert.Equal(t, "top", res.Segments[0].Label)
	assert.Equal(t, 2.5, res.Segments[0].Centroid)
	assert.Equal(t, 5.0, res.Height)
}

func TestTransformBrace_Errors(t *testing.T) {
	t.Run("no active segments", func(t *testing.T) {
		brace := Brace{
			Breadth: Direct{Breadth: 20},
			Bottom:  Segment{Shape: ShapeRectangle, Modulus: braceModulus},
			Middle:  Segment{Shape: ShapeNone, Height: 5, Modulus: braceModulus},
		}
		res, err := TransformBrace(brace, 500, topModulus)
		assert.ErrorIs(t, err, ErrNoActiveSegments)
		assert.Nil(t, res)
	})

	t.Run("segment modulus", func(t *testing.T) {
		brace := defaultBrace()
		brace.Middle.Modulus = 0
		_, err := TransformBrace(brace, 500, topModulus)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "middle modulus", inputErr.Param)
	})

	t.Run("NaN height", func(t *testing.T) {
		brace := defaultBrace()
		brace.Top.Height = math.NaN()
		_, err := TransformBrace(brace, 500, topModulus)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "top segment")
	})

	t.Run("unknown shape", func(t *testing.T) {
		brace := defaultBrace()
		brace.Bottom.Shape = Shape(7)
		_, err := TransformBrace(brace, 500, topModulus)
		assert.ErrorIs(t, err, ErrInvalidShape)
	})

	t.Run("reference modulus", func(t *testing.T) {
		_, err := TransformBrace(defaultBrace(), 500, -1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("shallow angle", func(t *testing.T) {
		brace := defaultBrace()
		brace.Breadth = Derived{PlanWidth: 10, AngleDeg: 0.01}
		_, err := TransformBrace(brace, 500, topModulus)
		assert.ErrorIs(t, err, ErrShallowAngle)
	})
}

func TestComputeSlice(t *testing.T) {
	s := Slice{
		Span:         500,
		TopThickness: 4,
		TopModulus:   topModulus,
		Braces:       []Brace{defaultBrace()},
	}

	res, err := ComputeSlice(s)
	require.NoError(t, err)

	require.Len(t, res.Braces, 1)
	assert.Equal(t, Properties{Area: 2000, Centroid: 2, Inertia: 500.0 * 64 / 12}, res.Top)
	relDelta(t, 2.683304647160069, res.Centroid)
	relDelta(t, 14939.578886976475, res.TransformedInertia)
	relDelta(t, 149395788.86976475, res.EI)
	assert.Equal(t, topModulus*res.TransformedInertia, res.EI)
}

func TestComputeSlice_TwoBraces(t *testing.T) {
	res, err := ComputeSlice(Slice{
		Span:         500,
		TopThickness: 4,
		TopModulus:   topModulus,
		Braces:       []Brace{defaultBrace(), defaultBrace()},
	})
	require.NoError(t, err)

	relDelta(t, 3.199395770392749, res.Centroid)
	relDelta(t, 25573.3856998993, res.TransformedInertia)
}

func TestComputeSlice_TopOnly(t *testing.T) {
	res, err := ComputeSlice(Slice{Span: 500, TopThickness: 4, TopModulus: topModulus})
	require.NoError(t, err)

	assert.Empty(t, res.Braces)
	assert.Equal(t, 2.0, res.Centroid)
	relDelta(t, 500.0*64/12, res.TransformedInertia)
}

func TestComputeSlice_Deterministic(t *testing.T) {
	s := Slice{
		Span:         500,
		TopThickness: 4,
		TopModulus:   topModulus,
		Braces:       []Brace{defaultBrace(), defaultBrace()},
	}

	first, err := ComputeSlice(s)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ComputeSlice(s)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first.EI), math.Float64bits(again.EI))
		assert.Equal(t, math.Float64bits(first.Centroid), math.Float64bits(again.Centroid))
		assert.Equal(t, first, again)
	}
}

func TestComputeSlice_FailingBraceFailsSlice(t *testing.T) {
	bad := defaultBrace()
	bad.Bottom.Height, bad.Middle.Height, bad.Top.Height = 0, 0, 0

	res, err := ComputeSlice(Slice{
		Span:         500,
		TopThickness: 4,
		TopModulus:   topModulus,
		Braces:       []Brace{defaultBrace(), bad},
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoActiveSegments)
	assert.Contains(t, err.Error(), "brace 2")
}

func TestComputeSlice_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		param string
	}{
		{"top modulus", Slice{Span: 500, TopThickness: 4}, "top modulus"},
		{"span", Slice{Span: -5, TopThickness: 4, TopModulus: topModulus}, "span"},
		{"thickness", Slice{Span: 500, TopThickness: math.Inf(1), TopModulus: topModulus}, "top thickness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSlice(tt.slice)
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.param, inputErr.Param)
		})
	}
}
