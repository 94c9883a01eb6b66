// Package rotation checks the end rotation produced by a moment acting on a
// section of known flexural rigidity.
package rotation

import (
	"fmt"
	"math"
)

// Result holds the outcome of a rotation check
type Result struct {
	MomentNmm   float64 // applied moment (N·mm)
	EI          float64 // N·mm²
	RotationDeg float64 // θ = M / EI, in degrees
	LimitDeg    float64 // 0 when no limit applies
	HasLimit    bool
	Pass        bool
	Message     string
}

// Check computes θ = M / EI for a moment given in N·m and compares it with
// limitDeg. A non-finite or non-positive limit disables the comparison.
func Check(momentNm, ei, limitDeg float64) (*Result, error) {
	if math.IsNaN(ei) || math.IsInf(ei, 0) || ei <= 0 {
		return nil, fmt.Errorf("EI must be a finite, positive number, got %v", ei)
	}
	if math.IsNaN(momentNm) || math.IsInf(momentNm, 0) {
		return nil, fmt.Errorf("moment must be finite, got %v", momentNm)
	}

	result := &Result{
		MomentNmm: momentNm * 1e3,
		EI:        ei,
	}
	result.RotationDeg = result.MomentNmm / ei * 180 / math.Pi

	if !math.IsNaN(limitDeg) && !math.IsInf(limitDeg, 0) && limitDeg > 0 {
		result.HasLimit = true
		result.LimitDeg = limitDeg
		result.Pass = math.Abs(result.RotationDeg) <= limitDeg
	} else {
		result.Pass = true
	}

	switch {
	case !result.HasLimit:
		result.Message = "No rotation limit specified"
	case result.Pass:
		result.Message = fmt.Sprintf("OK - θ = %.3f° ≤ %.3f°", result.RotationDeg, limitDeg)
	default:
		result.Message = fmt.Sprintf("Over limit - θ = %.3f° > %.3f°", result.RotationDeg, limitDeg)
	}

	return result, nil
}
