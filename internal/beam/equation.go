package beam

import (
	"fmt"
	"math"
)

// Equation is a closed-form diagram equation of position x (m) along the beam
type Equation interface {
	Evaluate(x float64) float64
}

// EquationFunc adapts a plain function to an Equation
type EquationFunc func(x float64) float64

// Evaluate calls f(x)
func (f EquationFunc) Evaluate(x float64) float64 {
	return f(x)
}

// rawEquation is implemented by equations whose unguarded value can be inspected,
// so the sampler can count degenerate points.
type rawEquation interface {
	evaluateRaw(x float64) float64
}

// finite substitutes 0 for NaN and infinite values
func finite(y float64) float64 {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0
	}
	return y
}

// NewEquation builds the equation of quantity q for a beam under uniform load w
// with dimensionless factor j. Two-span reactions are solved (or reused) here.
func NewEquation(b *Beam, c Condition, q Quantity, w, j float64) (Equation, error) {
	switch q {
	case ShearForce, BendingMoment, Deflection:
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, q)
	}

	switch c {
	case SimplySupported:
		return simplySupportedEquation{
			quantity: q,
			l:        b.PrimarySpan,
			w:        w,
			j:        j,
			ei:       b.Material.EIkNm2(),
		}, nil
	case TwoSpanUnequal:
		return twoSpanEquation{
			quantity:  q,
			l1:        b.PrimarySpan,
			l2:        b.SecondarySpan,
			w:         w,
			j:         j,
			ei:        b.Material.EIkNm2(),
			reactions: b.SolveReactions(w),
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidCondition, c)
}

// simplySupportedEquation evaluates a single span L under uniform load
type simplySupportedEquation struct {
	quantity Quantity
	l        float64 // span (m)
	w        float64 // load (kN/m)
	j        float64 // factor
	ei       float64 // kN·m²
}

func (e simplySupportedEquation) Evaluate(x float64) float64 {
	return finite(e.evaluateRaw(x))
}

func (e simplySupportedEquation) evaluateRaw(x float64) float64 {
	l, w := e.l, e.w

	switch e.quantity {
	case ShearForce:
		return w * (l/2 - x) * e.j
	case BendingMoment:
		return w * x * (l - x) / 2 * e.j
	case Deflection:
		if x > l {
			return 0
		}
		// δ = -(w·x / 24EI)·(L³ - 2Lx² + x³), m → mm
		return -(w * x / (24 * e.ei)) * (l*l*l - 2*l*x*x + x*x*x) * e.j * 1000
	}
	return 0
}

// SimplifiedDeflection evaluates the alternate form w·x²·(3L - x) / 6EI (mm)
// for a simply supported beam. It carries no factor and is not used for diagrams.
func SimplifiedDeflection(b *Beam, w, x float64) float64 {
	l := b.PrimarySpan
	return finite(w * x * x * (3*l - x) / (6 * b.Material.EIkNm2()) * 1000)
}

// twoSpanEquation evaluates a two-span continuous beam under uniform load
type twoSpanEquation struct {
	quantity  Quantity
	l1, l2    float64 // spans (m)
	w         float64 // load (kN/m)
	j         float64 // factor
	ei        float64 // kN·m²
	reactions Reactions
}

func (e twoSpanEquation) Evaluate(x float64) float64 {
	return finite(e.evaluateRaw(x))
}

func (e twoSpanEquation) evaluateRaw(x float64) float64 {
	if x > e.l1+e.l2 {
		return 0
	}

	switch e.quantity {
	case ShearForce:
		return e.shear(x) * e.j
	case BendingMoment:
		return e.moment(x) * e.j
	case Deflection:
		return e.deflection(x) * 1000 * e.j
	}
	return 0
}

func (e twoSpanEquation) shear(x float64) float64 {
	r := e.reactions
	if x <= e.l1 {
		return r.R1 - e.w*x
	}
	return r.R1 + r.R2 - e.w*x
}

func (e twoSpanEquation) moment(x float64) float64 {
	r := e.reactions
	if x <= e.l1 {
		return r.R1*x - e.w*x*x/2
	}
	return r.R1*x + r.R2*(x-e.l1) - e.w*x*x/2
}

// deflection integrates EI·y'' = M(x) twice with y(0) = y(L1) = 0 (m).
// The load term past L1 is w·x·(x³ - L1³)/24. It supersedes the older
// w·(x³ - L1³)/24, which left a nonzero deflection at the far support.
func (e twoSpanEquation) deflection(x float64) float64 {
	r, w, l1 := e.reactions, e.w, e.l1
	l1sq, l1cu := l1*l1, l1*l1*l1

	if x <= l1 {
		return (x / (24 * e.ei)) * (4*r.R1*x*x - w*x*x*x + w*l1cu - 4*r.R1*l1sq)
	}

	return ((r.R1*x/6)*(x*x-l1sq) +
		(r.R2*x/6)*(x*x-3*l1*x+3*l1sq) -
		r.R2*l1cu/6 -
		(w*x/24)*(x*x*x-l1cu)) / e.ei
}
