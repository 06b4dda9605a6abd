package beam

// EIConversion converts flexural rigidity from N·mm² to kN·m² (1000³).
const EIConversion = 1e9

// Material holds the stiffness of a prismatic member
type Material struct {
	EI float64 // Flexural rigidity (N·mm²)
}

// NewMaterial creates a material with the given flexural rigidity in N·mm²
func NewMaterial(ei float64) Material {
	return Material{EI: ei}
}

// EIkNm2 returns the flexural rigidity in kN·m²
func (m Material) EIkNm2() float64 {
	return m.EI / EIConversion
}

// Beam represents a prismatic beam of one or two spans under uniform load.
// A Beam caches its support reactions and is not safe for concurrent use.
type Beam struct {
	// Geometry (m)
	PrimarySpan   float64 // L1 - first (or only) span
	SecondarySpan float64 // L2 - second span of a two-span beam

	Material Material

	reactions *Reactions
}

// NewBeam creates a beam. A non-positive secondary span defaults to the primary span.
func NewBeam(primarySpan, secondarySpan float64, material Material) *Beam {
	if secondarySpan <= 0 {
		secondarySpan = primarySpan
	}
	return &Beam{
		PrimarySpan:   primarySpan,
		SecondarySpan: secondarySpan,
		Material:      material,
	}
}

// TotalSpan returns L1 + L2
func (b *Beam) TotalSpan() float64 {
	return b.PrimarySpan + b.SecondarySpan
}

// Reactions holds the support reactions of a two-span continuous beam
type Reactions struct {
	Load float64 // w - uniform load the reactions were solved for (kN/m)

	M1 float64 // Moment at the interior support (kN-m)
	R1 float64 // Left end support (kN)
	R2 float64 // Interior support (kN)
	R3 float64 // Right end support (kN)
}

// Total returns the sum of the support reactions
func (r Reactions) Total() float64 {
	return r.R1 + r.R2 + r.R3
}

// SolveTwoSpanReactions solves the reactions of a two-span continuous beam
// with simple end supports under a uniform load w (three-moment equation).
func SolveTwoSpanReactions(w, l1, l2 float64) Reactions {
	m1 := -(w*l1*l1*l1 + w*l2*l2*l2) / (8 * (l1 + l2))
	r1 := m1/l1 + w*l1/2
	r3 := m1/l2 + w*l2/2
	r2 := w*(l1+l2) - r1 - r3

	return Reactions{
		Load: w,
		M1:   m1,
		R1:   r1,
		R2:   r2,
		R3:   r3,
	}
}

// SimplySupportedReactions returns the end reactions of a single span under uniform load.
// R3 is always zero.
func SimplySupportedReactions(w, l float64) Reactions {
	r := w * l / 2
	return Reactions{Load: w, R1: r, R2: r}
}

// SolveReactions returns the two-span reactions for load w, computing them
// only when none are cached or the cached ones belong to a different load.
func (b *Beam) SolveReactions(w float64) Reactions {
	if b.reactions != nil && b.reactions.Load == w {
		return *b.reactions
	}
	r := SolveTwoSpanReactions(w, b.PrimarySpan, b.SecondarySpan)
	b.reactions = &r
	return r
}

// Reactions returns the cached reactions, if any
func (b *Beam) Reactions() (Reactions, bool) {
	if b.reactions == nil {
		return Reactions{}, false
	}
	return *b.reactions, true
}

// ResetReactions drops the cached reactions
func (b *Beam) ResetReactions() {
	b.reactions = nil
}
