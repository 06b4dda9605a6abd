package scenario

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Result holds the sampled diagrams of one scenario
type Result struct {
	Scenario  Scenario
	Beam      *beam.Beam
	Condition beam.Condition
	Reactions beam.Reactions

	// Shear, moment and deflection, in that order
	Series []beam.Series
}

// Run validates the scenario and samples all three diagrams
func Run(a *beam.Analysis, s Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b, c, err := s.Beam()
	if err != nil {
		return nil, err
	}

	series, err := a.All(b, s.Load, c, s.EffectiveFactor())
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", s.Name, err)
	}

	res := &Result{
		Scenario:  s,
		Beam:      b,
		Condition: c,
		Series:    series,
	}

	switch c {
	case beam.SimplySupported:
		res.Reactions = beam.SimplySupportedReactions(s.Load, b.PrimarySpan)
	case beam.TwoSpanUnequal:
		res.Reactions = b.SolveReactions(s.Load)
	}

	return res, nil
}

// Diagram returns the series of quantity q
func (r *Result) Diagram(q beam.Quantity) (beam.Series, bool) {
	for _, s := range r.Series {
		if s.Quantity == q {
			return s, true
		}
	}
	return beam.Series{}, false
}

// Peak returns the point of largest magnitude of quantity q
func (r *Result) Peak(q beam.Quantity) beam.Point {
	s, ok := r.Diagram(q)
	if !ok {
		return beam.Point{}
	}
	return s.Peak()
}
