package nscp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteModulus(t *testing.T) {
	ec, err := ConcreteModulus(28)
	require.NoError(t, err)
	assert.InDelta(t, 24870.06, ec, 0.01)

	for _, fc := range []float64{0, -21, math.NaN()} {
		_, err := ConcreteModulus(fc)
		assert.Error(t, err)
	}
}

func TestMaterialModulus(t *testing.T) {
	tests := []struct {
		name     string
		expected float64
	}{
		{"steel", Es},
		{" Steel ", Es},
		{"concrete", 4700 * math.Sqrt(28)},
		{"concrete:21", 4700 * math.Sqrt(21)},
		{"CONCRETE: 35", 4700 * math.Sqrt(35)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaterialModulus(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}

	for _, bad := range []string{"timber", "steel:250", "concrete:abc", "concrete:-4", ""} {
		_, err := MaterialModulus(bad)
		assert.Error(t, err, bad)
	}
}

func TestGoverningMoment(t *testing.T) {
	m := Moments{Dead: 50, Live: 30}

	mu, combo, ok := GoverningMoment(m, LoadCombinations)
	require.True(t, ok)
	assert.Equal(t, "2a", combo.ID)
	assert.InDelta(t, 1.2*50+1.6*30, mu, 1e-9)

	mu, combo, ok = GoverningMoment(m, ServiceCombinations)
	require.True(t, ok)
	assert.Equal(t, "S2", combo.ID)
	assert.InDelta(t, 80, mu, 1e-12)

	_, _, ok = GoverningMoment(Moments{}, LoadCombinations)
	assert.False(t, ok)
}

func TestGoverningMoment_Alternatives(t *testing.T) {
	tests := []struct {
		name     string
		moments  Moments
		expected float64
		id       string
	}{
		{"roof and rain", Moments{Dead: 10, Roof: 10, Rain: 10}, 1.2*10 + 1.6*10, "3a"},
		{"rain governs", Moments{Dead: 10, Roof: 4, Rain: 10}, 1.2*10 + 1.6*10, "3c"},
		{"live or wind", Moments{Dead: 10, Roof: 10, Live: 2, Wind: 10}, 1.2*10 + 1.6*10 + 0.5*10, "3b"},
		{"rain with live", Moments{Dead: 10, Live: 10, Wind: 10, Rain: 10}, 1.2*10 + 1.6*10 + 1.0*10, "3c"},
		{"wind with rain", Moments{Dead: 10, Live: 2, Wind: 20, Rain: 10}, 1.2*10 + 1.0*20 + 1.0*2 + 0.5*10, "4b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu, combo, ok := GoverningMoment(tt.moments, LoadCombinations)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, mu, 1e-9)
			assert.Equal(t, tt.id, combo.ID)
		})
	}

	for _, lc := range LoadCombinations {
		assert.False(t, lc.Factors[Roof] != 0 && lc.Factors[Rain] != 0, "combination %s mixes Lr and R", lc.ID)
	}
}

func TestLoadTypeString(t *testing.T) {
	assert.Equal(t, "Lr", Roof.String())
	assert.Equal(t, "E", Earthquake.String())
	assert.Equal(t, "?", LoadType(99).String())
}
