package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustEquation(t *testing.T, b *Beam, c Condition, q Quantity, w, j float64) Equation {
	t.Helper()
	eq, err := NewEquation(b, c, q, w, j)
	require.NoError(t, err)
	return eq
}

// L = 5 m, w = 8 kN/m.
func TestSimplySupported_Shear(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(2e13))
	v := mustEquation(t, b, SimplySupported, ShearForce, 8, 1)

	assert.InDelta(t, 20.0, v.Evaluate(0), tol)
	assert.InDelta(t, 0.0, v.Evaluate(2.5), tol)
	assert.InDelta(t, -20.0, v.Evaluate(5), tol)
}

func TestSimplySupported_Moment(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(2e13))
	m := mustEquation(t, b, SimplySupported, BendingMoment, 8, 1)

	assert.InDelta(t, 0.0, m.Evaluate(0), tol)
	assert.InDelta(t, 0.0, m.Evaluate(5), tol)
	assert.InDelta(t, 25.0, m.Evaluate(2.5), tol)
	assert.InDelta(t, 8*5*5/8.0, m.Evaluate(2.5), tol, "midspan moment should be wL²/8")

	// Midspan is the maximum
	for _, x := range []float64{0.5, 1, 2, 2.4, 2.6, 3, 4.5} {
		assert.Less(t, m.Evaluate(x), m.Evaluate(2.5))
	}
}

func TestSimplySupported_Deflection(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(2e13)) // 20000 kN·m²
	d := mustEquation(t, b, SimplySupported, Deflection, 8, 1)

	w, l, ei := 8.0, 5.0, 20000.0
	want := -5 * w * math.Pow(l, 4) / (384 * ei) * 1000

	assert.InDelta(t, want, d.Evaluate(2.5), 1e-9)
	assert.InDelta(t, -3.2552083, d.Evaluate(2.5), 1e-6)
	assert.InDelta(t, 0.0, d.Evaluate(0), tol)
	assert.InDelta(t, 0.0, d.Evaluate(5), tol)
	assert.Zero(t, d.Evaluate(5.5), "deflection beyond the span should be 0")
}

func TestSimplySupported_Factor(t *testing.T) {
	b := NewBeam(6, 0, NewMaterial(1e13))

	for _, q := range Quantities {
		one := mustEquation(t, b, SimplySupported, q, 10, 1)
		four := mustEquation(t, b, SimplySupported, q, 10, 4)
		for _, x := range []float64{0.7, 2, 3.3, 5.9} {
			assert.InDelta(t, 4*one.Evaluate(x), four.Evaluate(x), 1e-9, "%v at x=%v", q, x)
		}
	}
}

func TestSimplifiedDeflection(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(2e13))

	assert.Zero(t, SimplifiedDeflection(b, 8, 0))

	// w·L²·2L / 6EI = wL³ / 3EI
	want := 8 * math.Pow(5, 3) / (3 * 20000) * 1000
	assert.InDelta(t, want, SimplifiedDeflection(b, 8, 5), 1e-9)
	assert.InDelta(t, 16.6666667, SimplifiedDeflection(b, 8, 5), 1e-6)

	// Both forms scale linearly with load and inversely with EI
	stiff := NewBeam(5, 0, NewMaterial(4e13))
	assert.InDelta(t, SimplifiedDeflection(b, 8, 3)/2, SimplifiedDeflection(stiff, 8, 3), 1e-9)

	d := mustEquation(t, b, SimplySupported, Deflection, 8, 1)
	d2 := mustEquation(t, stiff, SimplySupported, Deflection, 8, 1)
	assert.InDelta(t, d.Evaluate(3)/2, d2.Evaluate(3), 1e-9)

	zero := NewBeam(5, 0, NewMaterial(0))
	assert.Zero(t, SimplifiedDeflection(zero, 8, 0))
	assert.Zero(t, SimplifiedDeflection(zero, 8, 2))
}

// L1 = 4, L2 = 6, w = 10.
func TestTwoSpan_Shear(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(2e13))
	v := mustEquation(t, b, TwoSpanUnequal, ShearForce, 10, 1)

	assert.InDelta(t, 11.25, v.Evaluate(0), tol)
	assert.InDelta(t, 11.25-40, v.Evaluate(4), tol)
	assert.InDelta(t, 11.25+64.5833333-40.0001, v.Evaluate(4.00001), 1e-4)
	// Just left of the far support the shear equals -R3
	assert.InDelta(t, -24.1666667, v.Evaluate(10), 1e-6)
	assert.Zero(t, v.Evaluate(10.5))
}

func TestTwoSpan_Moment(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(2e13))
	m := mustEquation(t, b, TwoSpanUnequal, BendingMoment, 10, 1)

	assert.InDelta(t, 0.0, m.Evaluate(0), tol)
	assert.InDelta(t, -35.0, m.Evaluate(4), tol, "moment at the interior support should be M1")
	assert.InDelta(t, 0.0, m.Evaluate(10), 1e-9)
	assert.Zero(t, m.Evaluate(11))
}

func TestTwoSpan_MomentContinuity(t *testing.T) {
	cases := []struct{ w, l1, l2 float64 }{
		{10, 4, 6},
		{5, 8, 3},
		{22, 5, 5},
	}

	for _, tc := range cases {
		b := NewBeam(tc.l1, tc.l2, NewMaterial(1e13))
		eq := twoSpanEquation{
			quantity:  BendingMoment,
			l1:        tc.l1,
			l2:        tc.l2,
			w:         tc.w,
			j:         1,
			ei:        b.Material.EIkNm2(),
			reactions: b.SolveReactions(tc.w),
		}
		r := eq.reactions

		left := r.R1*tc.l1 - tc.w*tc.l1*tc.l1/2
		right := r.R1*tc.l1 + r.R2*(tc.l1-tc.l1) - tc.w*tc.l1*tc.l1/2
		assert.InDelta(t, left, right, 1e-9)
		assert.InDelta(t, eq.Evaluate(tc.l1), eq.Evaluate(tc.l1+1e-9), 1e-6)
		assert.InDelta(t, r.M1, eq.Evaluate(tc.l1), 1e-9)
	}
}

func TestTwoSpan_DeflectionSupports(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(2e13))
	d := mustEquation(t, b, TwoSpanUnequal, Deflection, 10, 1)

	assert.InDelta(t, 0.0, d.Evaluate(0), 1e-9)
	assert.InDelta(t, 0.0, d.Evaluate(4), 1e-9, "left branch should vanish at the interior support")
	assert.InDelta(t, 0.0, d.Evaluate(4+1e-9), 1e-6, "right branch should vanish at the interior support")
	assert.InDelta(t, 0.0, d.Evaluate(10), 1e-6, "deflection should vanish at the far support")
	assert.Zero(t, d.Evaluate(10.1))

	// The long span sags under the load
	assert.Less(t, d.Evaluate(7), 0.0)
}

// Macaulay form: EI·y = R1x³/6 + R2<x-L1>³/6 - wx⁴/24 + C1·x.
func TestTwoSpan_DeflectionMatchesDoubleIntegration(t *testing.T) {
	w, l1, l2, ei := 10.0, 4.0, 6.0, 20000.0
	b := NewBeam(l1, l2, NewMaterial(ei*EIConversion))
	d := mustEquation(t, b, TwoSpanUnequal, Deflection, w, 1)
	r := b.SolveReactions(w)

	c1 := w*math.Pow(l1, 3)/24 - r.R1*l1*l1/6
	for _, x := range []float64{0.5, 1.7, 3.9, 4.3, 6, 7, 9.8} {
		macaulay := r.R1*math.Pow(x, 3)/6 - w*math.Pow(x, 4)/24 + c1*x
		if x > l1 {
			macaulay += r.R2 * math.Pow(x-l1, 3) / 6
		}
		assert.InDelta(t, macaulay/ei*1000, d.Evaluate(x), 1e-9, "x=%v", x)
	}
}

// Equal spans reduce to the propped-cantilever curve on each side.
func TestTwoSpan_EqualSpansSymmetric(t *testing.T) {
	b := NewBeam(5, 5, NewMaterial(1e13))
	d := mustEquation(t, b, TwoSpanUnequal, Deflection, 12, 1)
	m := mustEquation(t, b, TwoSpanUnequal, BendingMoment, 12, 1)

	for _, x := range []float64{0.5, 1.25, 2.5, 3.75, 4.5} {
		assert.InDelta(t, d.Evaluate(x), d.Evaluate(10-x), 1e-9, "deflection x=%v", x)
		assert.InDelta(t, m.Evaluate(x), m.Evaluate(10-x), 1e-9, "moment x=%v", x)
	}
}

func TestDeflection_ZeroEIIsDegenerate(t *testing.T) {
	for _, c := range Conditions {
		b := NewBeam(4, 6, NewMaterial(0))
		d := mustEquation(t, b, c, Deflection, 10, 1)

		raw := d.(rawEquation)
		assert.True(t, math.IsNaN(raw.evaluateRaw(0)), "%v: 0/0 at the support", c)
		assert.True(t, math.IsInf(raw.evaluateRaw(1), 0), "%v: expected an infinite raw value", c)

		for _, x := range []float64{0, 1, 2.5, 4, 5} {
			assert.Zero(t, d.Evaluate(x), "%v at x=%v", c, x)
		}
	}
}

func TestNewEquation_Invalid(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(1e13))

	_, err := NewEquation(b, Condition(0), ShearForce, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidCondition)

	_, err = NewEquation(b, Condition(9), Deflection, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidCondition)

	_, err = NewEquation(b, SimplySupported, Quantity(0), 10, 1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewEquation_SimplySupportedDoesNotSolveReactions(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(1e13))
	mustEquation(t, b, SimplySupported, Deflection, 8, 1)

	_, ok := b.Reactions()
	assert.False(t, ok)
}

func TestNewEquation_TwoSpanSolvesReactionsForEveryQuantity(t *testing.T) {
	for _, q := range Quantities {
		b := NewBeam(4, 6, NewMaterial(1e13))
		mustEquation(t, b, TwoSpanUnequal, q, 10, 1)

		r, ok := b.Reactions()
		require.True(t, ok, "%v should solve reactions", q)
		assert.InDelta(t, 11.25, r.R1, 1e-9)
	}
}
