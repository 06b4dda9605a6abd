package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normal-weight concrete modulus coefficient, Ec = 4700√f'c (Section 419.2.2)
	EcCoefficient = 4700.0
)

// Ec calculates the modulus of elasticity of normal-weight concrete (MPa)
// NSCP 2015 Section 419.2.2.1
func Ec(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return EcCoefficient * math.Sqrt(fc)
}

// ModularRatio returns n = Es/Ec
func ModularRatio(fc float64) float64 {
	ec := Ec(fc)
	if ec == 0 {
		return 0
	}
	return Es / ec
}
