package nscp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NSCP 2015 elastic moduli

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Ec = 4700√f'c for normal-weight concrete (Section 419.2.2.1)
	EcFactor = 4700.0

	// DefaultFc is used for "concrete" without an explicit strength
	DefaultFc = 28.0 // MPa
)

// ConcreteModulus returns Ec for normal-weight concrete of strength fc (MPa)
func ConcreteModulus(fc float64) (float64, error) {
	if math.IsNaN(fc) || math.IsInf(fc, 0) || fc <= 0 {
		return 0, fmt.Errorf("f'c must be positive, got %v", fc)
	}
	return EcFactor * math.Sqrt(fc), nil
}

// MaterialModulus resolves a named material into its modulus of elasticity (MPa).
//
// Recognized names:
//
//	steel          Es
//	concrete       Ec with f'c = 28 MPa
//	concrete:<fc>  Ec with the given f'c, e.g. "concrete:21"
func MaterialModulus(name string) (float64, error) {
	key, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")

	switch key {
	case "steel":
		if hasArg {
			return 0, fmt.Errorf("material %q takes no argument", name)
		}
		return Es, nil
	case "concrete":
		fc := DefaultFc
		if hasArg {
			v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
			if err != nil {
				return 0, fmt.Errorf("material %q: invalid f'c: %w", name, err)
			}
			fc = v
		}
		return ConcreteModulus(fc)
	}

	return 0, fmt.Errorf("unknown material %q", name)
}
