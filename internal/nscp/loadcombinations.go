package nscp

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity-only uniform loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadIntensities holds unfactored uniform loads by load type (kN/m)
type LoadIntensities struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// IsZero reports whether no load was given
func (l LoadIntensities) IsZero() bool {
	return l == LoadIntensities{}
}

// CalculateFactoredLoad calculates the factored uniform load for a given load combination
func (lc LoadCombination) CalculateFactoredLoad(loads LoadIntensities) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// CalculateGoverningLoad finds the maximum factored uniform load from all combinations
func CalculateGoverningLoad(loads LoadIntensities, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		wu := combo.CalculateFactoredLoad(loads)
		if wu > maxLoad {
			maxLoad = wu
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}
