package beam

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCondition is returned for an unsupported support condition
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrInvalidQuantity is returned for an unsupported diagram quantity
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Condition identifies the support condition of a beam
type Condition int

const (
	SimplySupported Condition = iota + 1 // single span on two end supports
	TwoSpanUnequal                       // two spans over three supports
)

// Conditions lists every supported condition
var Conditions = []Condition{SimplySupported, TwoSpanUnequal}

// ParseCondition maps a condition tag such as "two-span-unequal" to a Condition
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simply-supported":
		return SimplySupported, nil
	case "two-span-unequal":
		return TwoSpanUnequal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCondition, s)
}

func (c Condition) String() string {
	switch c {
	case SimplySupported:
		return "simply-supported"
	case TwoSpanUnequal:
		return "two-span-unequal"
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// Span returns the length over which the condition's diagrams are sampled
func (c Condition) Span(b *Beam) (float64, error) {
	switch c {
	case SimplySupported:
		return b.PrimarySpan, nil
	case TwoSpanUnequal:
		return b.TotalSpan(), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidCondition, c)
}

// Quantity identifies which internal-force or displacement diagram to compute
type Quantity int

const (
	ShearForce Quantity = iota + 1
	BendingMoment
	Deflection
)

// Quantities lists every diagram quantity in report order
var Quantities = []Quantity{ShearForce, BendingMoment, Deflection}

// ParseQuantity maps "shear", "moment" or "deflection" to a Quantity
func ParseQuantity(s string) (Quantity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shear", "shear-force":
		return ShearForce, nil
	case "moment", "bending-moment":
		return BendingMoment, nil
	case "deflection":
		return Deflection, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
}

func (q Quantity) String() string {
	switch q {
	case ShearForce:
		return "Shear Force"
	case BendingMoment:
		return "Bending Moment"
	case Deflection:
		return "Deflection"
	}
	return fmt.Sprintf("Quantity(%d)", int(q))
}

// Unit returns the unit of the quantity's y values
func (q Quantity) Unit() string {
	switch q {
	case ShearForce:
		return "kN"
	case BendingMoment:
		return "kN-m"
	case Deflection:
		return "mm"
	}
	return ""
}

// Label returns the y-axis label, e.g. "Shear Force (kN)"
func (q Quantity) Label() string {
	return fmt.Sprintf("%s (%s)", q, q.Unit())
}
