package nscp

// LoadType identifies a source of unfactored moment
type LoadType int

const (
	Dead       LoadType = iota // D
	Live                       // L
	Roof                       // Lr
	Wind                       // W
	Earthquake                 // E
	Rain                       // R
)

var loadSymbols = [...]string{"D", "L", "Lr", "W", "E", "R"}

func (t LoadType) String() string {
	if t < 0 || int(t) >= len(loadSymbols) {
		return "?"
	}
	return loadSymbols[t]
}

// LoadCombination is an NSCP 2015 Section 203.3 combination expressed as
// load factors per load type.
type LoadCombination struct {
	ID          string
	Description string
	Factors     map[LoadType]float64
}

// Moments holds unfactored moments by load type (N·m)
type Moments map[LoadType]float64

// LoadCombinations lists NSCP 2015 Section 203.3.1 basic combinations.
// Each "or" alternative is its own entry so that only one of Lr and R, and
// only one of 1.0L and 0.5W, enters a combined moment.
var LoadCombinations = []LoadCombination{
	{"1", "1.4D", map[LoadType]float64{Dead: 1.4}},
	{"2a", "1.2D + 1.6L + 0.5Lr", map[LoadType]float64{Dead: 1.2, Live: 1.6, Roof: 0.5}},
	{"2b", "1.2D + 1.6L + 0.5R", map[LoadType]float64{Dead: 1.2, Live: 1.6, Rain: 0.5}},
	{"3a", "1.2D + 1.6Lr + 1.0L", map[LoadType]float64{Dead: 1.2, Roof: 1.6, Live: 1.0}},
	{"3b", "1.2D + 1.6Lr + 0.5W", map[LoadType]float64{Dead: 1.2, Roof: 1.6, Wind: 0.5}},
	{"3c", "1.2D + 1.6R + 1.0L", map[LoadType]float64{Dead: 1.2, Rain: 1.6, Live: 1.0}},
	{"3d", "1.2D + 1.6R + 0.5W", map[LoadType]float64{Dead: 1.2, Rain: 1.6, Wind: 0.5}},
	{"4a", "1.2D + 1.0W + 1.0L + 0.5Lr", map[LoadType]float64{Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5}},
	{"4b", "1.2D + 1.0W + 1.0L + 0.5R", map[LoadType]float64{Dead: 1.2, Wind: 1.0, Live: 1.0, Rain: 0.5}},
	{"5", "1.2D + 1.0E + 1.0L", map[LoadType]float64{Dead: 1.2, Live: 1.0, Earthquake: 1.0}},
	{"6", "0.9D + 1.0W", map[LoadType]float64{Dead: 0.9, Wind: 1.0}},
	{"7", "0.9D + 1.0E", map[LoadType]float64{Dead: 0.9, Earthquake: 1.0}},
}

// ServiceCombinations are unfactored gravity combinations used for
// serviceability checks such as rotation limits
var ServiceCombinations = []LoadCombination{
	{"S1", "D", map[LoadType]float64{Dead: 1.0}},
	{"S2", "D + L", map[LoadType]float64{Dead: 1.0, Live: 1.0}},
}

// Moment applies the combination factors to the unfactored moments
func (lc LoadCombination) Moment(m Moments) float64 {
	var total float64
	for t := Dead; t <= Rain; t++ {
		total += lc.Factors[t] * m[t]
	}
	return total
}

// GoverningMoment returns the largest combined moment and the combination
// producing it. ok is false when no combination yields a positive moment.
func GoverningMoment(m Moments, combinations []LoadCombination) (moment float64, governing LoadCombination, ok bool) {
	for _, lc := range combinations {
		if mu := lc.Moment(m); mu > moment {
			moment, governing, ok = mu, lc, true
		}
	}
	return moment, governing, ok
}
