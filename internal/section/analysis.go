package section

import "fmt"

// TransformBrace stacks the active segments of a brace at a common breadth,
// transforms each one to refModulus and combines them into a single
// transformed section using the parallel-axis theorem.
func TransformBrace(brace Brace, span, refModulus float64) (*BraceResult, error) {
	if err := requirePositive(refModulus, "reference modulus"); err != nil {
		return nil, err
	}

	breadth, err := InterceptBreadth(brace, span)
	if err != nil {
		return nil, err
	}

	result := &BraceResult{Breadth: breadth}

	// Walk the stack bottom → top keeping the base of the next segment
	var runningBase, momentSum float64
	for _, seg := range brace.stack() {
		if !seg.active() {
			continue
		}

		props, err := ShapeProperties(seg.Shape, breadth, seg.Height)
		if err != nil {
			return nil, fmt.Errorf("%s segment: %w", seg.label, err)
		}
		if err := requirePositive(seg.Modulus, seg.label+" modulus"); err != nil {
			return nil, err
		}

		ratio := seg.Modulus / refModulus
		ts := TransformedSegment{
			Label:              seg.label,
			Shape:              seg.Shape,
			Height:             seg.Height,
			Breadth:            breadth,
			Area:               props.Area,
			Centroid:           runningBase + props.Centroid,
			Inertia:            props.Inertia,
			ModularRatio:       ratio,
			TransformedArea:    ratio * props.Area,
			TransformedInertia: ratio * props.Inertia,
		}

		result.TransformedArea += ts.TransformedArea
		momentSum += ts.TransformedArea * ts.Centroid
		result.Segments = append(result.Segments, ts)

		runningBase += seg.Height
	}

	if result.TransformedArea == 0 {
		return nil, ErrNoActiveSegments
	}

	result.Height = runningBase
	result.TransformedCentroid = momentSum / result.TransformedArea

	for _, ts := range result.Segments {
		dy := result.TransformedCentroid - ts.Centroid
		result.TransformedInertia += ts.TransformedInertia + ts.TransformedArea*dy*dy
	}

	return result, nil
}

// ComputeSlice combines the top layer and every brace of the slice into one
// composite section and derives its flexural rigidity.
//
// A failing brace fails the whole slice; the error names the brace (1-based)
// and wraps the original error kind.
func ComputeSlice(s Slice) (*SliceResult, error) {
	if err := requirePositive(s.TopModulus, "top modulus"); err != nil {
		return nil, err
	}

	top, err := TopSection(s.Span, s.TopThickness)
	if err != nil {
		return nil, err
	}

	result := &SliceResult{
		Top:    top,
		Braces: make([]BraceResult, 0, len(s.Braces)),
	}

	totalArea := top.Area
	momentSum := top.Area * top.Centroid

	for i, brace := range s.Braces {
		br, err := TransformBrace(brace, s.Span, s.TopModulus)
		if err != nil {
			return nil, fmt.Errorf("brace %d: %w", i+1, err)
		}
		result.Braces = append(result.Braces, *br)

		totalArea += br.TransformedArea
		momentSum += br.TransformedArea * br.TransformedCentroid
	}

	if totalArea == 0 {
		return nil, ErrNoActiveSegments
	}

	result.Centroid = momentSum / totalArea

	dy := result.Centroid - top.Centroid
	inertia := top.Inertia + top.Area*dy*dy
	for _, br := range result.Braces {
		dy := result.Centroid - br.TransformedCentroid
		inertia += br.TransformedInertia + br.TransformedArea*dy*dy
	}

	result.TransformedInertia = inertia
	result.EI = s.TopModulus * inertia

	return result, nil
}
