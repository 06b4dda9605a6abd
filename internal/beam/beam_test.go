package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBeam_SecondarySpanDefaultsToPrimary(t *testing.T) {
	b := NewBeam(5, 0, NewMaterial(1e13))
	assert.Equal(t, 5.0, b.SecondarySpan)
	assert.Equal(t, 10.0, b.TotalSpan())

	b = NewBeam(4, 6, NewMaterial(1e13))
	assert.Equal(t, 6.0, b.SecondarySpan)
}

func TestMaterial_EIkNm2(t *testing.T) {
	m := NewMaterial(2e13)
	assert.InDelta(t, 20000.0, m.EIkNm2(), 1e-9)
}

// TestSolveTwoSpanReactions_Example checks L1=4, L2=6, w=10.
func TestSolveTwoSpanReactions_Example(t *testing.T) {
	r := SolveTwoSpanReactions(10, 4, 6)

	assert.InDelta(t, -35.0, r.M1, 1e-9)
	assert.InDelta(t, 11.25, r.R1, 1e-9)
	assert.InDelta(t, 24.1667, r.R3, 1e-4)
	assert.InDelta(t, 64.5833, r.R2, 1e-4)
	assert.Equal(t, 10.0, r.Load)
}

func TestSolveTwoSpanReactions_Equilibrium(t *testing.T) {
	cases := []struct {
		w, l1, l2 float64
	}{
		{10, 4, 6},
		{1, 1, 1},
		{25.5, 7.2, 3.1},
		{0.3, 12, 0.5},
		{100, 3, 3},
	}

	for _, tc := range cases {
		r := SolveTwoSpanReactions(tc.w, tc.l1, tc.l2)
		assert.InDelta(t, tc.w*(tc.l1+tc.l2), r.Total(), 1e-9*tc.w*(tc.l1+tc.l2),
			"w=%v L1=%v L2=%v", tc.w, tc.l1, tc.l2)
	}
}

// Equal spans give the textbook 3wL/8, 10wL/8, 3wL/8.
func TestSolveTwoSpanReactions_EqualSpans(t *testing.T) {
	w, l := 12.0, 5.0
	r := SolveTwoSpanReactions(w, l, l)

	assert.InDelta(t, -w*l*l/8, r.M1, 1e-9)
	assert.InDelta(t, 3*w*l/8, r.R1, 1e-9)
	assert.InDelta(t, 10*w*l/8, r.R2, 1e-9)
	assert.InDelta(t, 3*w*l/8, r.R3, 1e-9)
}

func TestSimplySupportedReactions(t *testing.T) {
	r := SimplySupportedReactions(8, 5)
	assert.Equal(t, 20.0, r.R1)
	assert.Equal(t, 20.0, r.R2)
	assert.Zero(t, r.R3)
	assert.Equal(t, 40.0, r.Total())
}

func TestBeam_SolveReactions_Cache(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(1e13))

	_, ok := b.Reactions()
	require.False(t, ok, "fresh beam should have no cached reactions")

	r := b.SolveReactions(10)
	cached, ok := b.Reactions()
	require.True(t, ok)
	assert.Equal(t, r, cached)

	// Same load reuses the cache
	assert.Equal(t, r, b.SolveReactions(10))

	// A different load is recomputed, not served stale
	r2 := b.SolveReactions(20)
	assert.InDelta(t, 2*r.R1, r2.R1, 1e-9)
	assert.Equal(t, 20.0, r2.Load)

	b.ResetReactions()
	_, ok = b.Reactions()
	assert.False(t, ok)
}

// A zero load solves to all-zero reactions and must still count as cached.
func TestBeam_SolveReactions_ZeroLoadIsCached(t *testing.T) {
	b := NewBeam(4, 6, NewMaterial(1e13))

	r := b.SolveReactions(0)
	assert.Zero(t, r.R1)
	assert.Zero(t, r.R2)
	assert.Zero(t, r.R3)

	_, ok := b.Reactions()
	assert.True(t, ok)
}
