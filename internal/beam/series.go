package beam

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Intervals is the number of equal steps a span is divided into when sampling
const Intervals = 100

// SampleCount is the number of points in every sampled series
const SampleCount = Intervals + 1

// Point is a sample of a diagram at position X (m)
type Point struct {
	X float64 // m
	Y float64 // kN, kN-m or mm depending on the quantity
}

// Series is a sampled diagram ready for rendering
type Series struct {
	Title     string
	Quantity  Quantity
	Condition Condition
	Points    []Point
}

// Sample evaluates eq at x = 0, span/100, ..., span. The last point is placed
// exactly at span.
func Sample(eq Equation, span float64) []Point {
	points, _ := sample(eq, span)
	return points
}

// sample also returns how many points were degenerate (NaN or infinite) and replaced by 0
func sample(eq Equation, span float64) ([]Point, int) {
	raw, hasRaw := eq.(rawEquation)
	step := span / Intervals

	points := make([]Point, SampleCount)
	degenerate := 0
	for i := range points {
		x := float64(i) * step
		if i == Intervals {
			x = span
		}

		var y float64
		if hasRaw {
			y = raw.evaluateRaw(x)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				degenerate++
				y = 0
			}
		} else {
			y = finite(eq.Evaluate(x))
		}
		points[i] = Point{X: x, Y: y}
	}
	return points, degenerate
}

// Xs returns the positions of the series
func (s Series) Xs() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the values of the series
func (s Series) Ys() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// Max returns the point with the largest value
func (s Series) Max() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[floats.MaxIdx(s.Ys())]
}

// Min returns the point with the smallest value
func (s Series) Min() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[floats.MinIdx(s.Ys())]
}

// Peak returns the point with the largest absolute value
func (s Series) Peak() Point {
	hi, lo := s.Max(), s.Min()
	if math.Abs(lo.Y) > math.Abs(hi.Y) {
		return lo
	}
	return hi
}
