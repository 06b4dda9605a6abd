package nscp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEc(t *testing.T) {
	assert.InDelta(t, 4700*math.Sqrt(28), Ec(28), 1e-9)
	assert.InDelta(t, 24870.06, Ec(28), 0.01)
	assert.Zero(t, Ec(0))
	assert.Zero(t, Ec(-5))
}

func TestModularRatio(t *testing.T) {
	assert.InDelta(t, 200000/(4700*math.Sqrt(21)), ModularRatio(21), 1e-9)
	assert.Zero(t, ModularRatio(0))
}

func TestCalculateGoverningLoad_Gravity(t *testing.T) {
	loads := LoadIntensities{Dead: 10, Live: 8}

	wu, combo := CalculateGoverningLoad(loads, SimplifiedCombinations)
	assert.InDelta(t, 1.2*10+1.6*8, wu, 1e-9)
	assert.Equal(t, "2", combo.ID)

	// Dead load alone governs with 1.4D
	wu, combo = CalculateGoverningLoad(LoadIntensities{Dead: 10}, SimplifiedCombinations)
	assert.InDelta(t, 14.0, wu, 1e-9)
	assert.Equal(t, "1", combo.ID)
}

func TestCalculateGoverningLoad_Full(t *testing.T) {
	loads := LoadIntensities{Dead: 10, Live: 2, Wind: 20}

	wu, combo := CalculateGoverningLoad(loads, LoadCombinations)
	assert.InDelta(t, 1.2*10+1.0*20+1.0*2, wu, 1e-9)
	assert.Equal(t, "4", combo.ID)

	for _, c := range LoadCombinations {
		assert.LessOrEqual(t, c.CalculateFactoredLoad(loads), wu, c.Description)
	}
}

func TestLoadIntensities_IsZero(t *testing.T) {
	assert.True(t, LoadIntensities{}.IsZero())
	assert.False(t, LoadIntensities{Rain: 0.5}.IsZero())
}
