package section

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Rectangle creates a b × h rectangular section with its bottom-left corner at the origin
func Rectangle(name string, width, height, fc float64) *Section {
	return &Section{
		Name: name,
		Fc:   fc,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: width, Y: 0},
			{X: width, Y: height},
			{X: 0, Y: height},
		},
	}
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()
	props.Ix = s.calculateIx(props.Area, props.CentroidY)

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateIx returns the second moment of area about the horizontal axis through
// the centroid, using the polygon form of Green's theorem and the parallel axis theorem
func (s *Section) calculateIx(area, cy float64) float64 {
	n := len(s.Vertices)
	if n < 3 || area == 0 {
		return 0
	}

	var signedArea, ixOrigin float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		ixOrigin += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
	}
	ixOrigin /= 12

	// Clockwise winding flips the sign
	if signedArea < 0 {
		ixOrigin = -ixOrigin
	}

	return ixOrigin - area*cy*cy
}

// Modulus returns the modulus of elasticity (MPa), defaulting to Ec = 4700√f'c
func (s *Section) Modulus() float64 {
	if s.E > 0 {
		return s.E
	}
	return nscp.Ec(s.Fc)
}

// FlexuralRigidity returns E·Ix in N·mm²
func (s *Section) FlexuralRigidity() float64 {
	return s.Modulus() * s.CalculateProperties().Ix
}
