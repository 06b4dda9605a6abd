package beam

import (
	"fmt"
	"log/slog"
)

// DefaultFactor is the dimensionless factor applied when none is configured
const DefaultFactor = 1.0

// Analysis selects the equations for a support condition and samples them into series
type Analysis struct {
	logger *slog.Logger
}

// NewAnalysis creates an analysis. A nil logger uses slog.Default().
func NewAnalysis(logger *slog.Logger) *Analysis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analysis{logger: logger}
}

// ShearForce samples the shear force diagram (kN)
func (a *Analysis) ShearForce(b *Beam, load float64, c Condition, factor float64) (Series, error) {
	return a.Diagram(b, load, c, ShearForce, factor)
}

// BendingMoment samples the bending moment diagram (kN-m)
func (a *Analysis) BendingMoment(b *Beam, load float64, c Condition, factor float64) (Series, error) {
	return a.Diagram(b, load, c, BendingMoment, factor)
}

// Deflection samples the deflection diagram (mm)
func (a *Analysis) Deflection(b *Beam, load float64, c Condition, factor float64) (Series, error) {
	return a.Diagram(b, load, c, Deflection, factor)
}

// Diagram samples quantity q of beam b under uniform load for condition c
func (a *Analysis) Diagram(b *Beam, load float64, c Condition, q Quantity, factor float64) (Series, error) {
	span, err := c.Span(b)
	if err != nil {
		return Series{}, err
	}

	prev, cached := b.Reactions()
	solving := c == TwoSpanUnequal && (!cached || prev.Load != load)

	eq, err := NewEquation(b, c, q, load, factor)
	if err != nil {
		return Series{}, err
	}
	if solving {
		r, _ := b.Reactions()
		a.logger.Debug("solved two-span reactions",
			"load", r.Load, "m1", r.M1, "r1", r.R1, "r2", r.R2, "r3", r.R3)
	}

	points, degenerate := sample(eq, span)
	if degenerate > 0 {
		a.logger.Warn("non-finite values replaced with zero",
			"quantity", q.String(), "condition", c.String(), "points", degenerate, "ei", b.Material.EI)
	}
	a.logger.Debug("sampled diagram", "quantity", q.String(), "condition", c.String(), "span", span)

	return Series{
		Title:     fmt.Sprintf("%s Diagram (%s)", q, c),
		Quantity:  q,
		Condition: c,
		Points:    points,
	}, nil
}

// All samples the shear, moment and deflection diagrams in that order
func (a *Analysis) All(b *Beam, load float64, c Condition, factor float64) ([]Series, error) {
	out := make([]Series, 0, len(Quantities))
	for _, q := range Quantities {
		s, err := a.Diagram(b, load, c, q, factor)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
