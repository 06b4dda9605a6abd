package section

import "fmt"

// Section represents a prismatic cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending is about the horizontal centroidal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Material properties
	Fc float64 `json:"fc" yaml:"fc"`                   // Concrete compressive strength (MPa)
	E  float64 `json:"e,omitempty" yaml:"e,omitempty"` // Modulus of elasticity override (MPa)

	// Section geometry defined by vertices (in mm)
	// Vertices may be given in either winding order
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moment of area about the horizontal centroidal axis
	Ix float64 // mm⁴

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.Fc <= 0 && s.E <= 0 {
		return &ValidationError{"either f'c or E must be positive"}
	}
	if s.E < 0 {
		return &ValidationError{"E must not be negative"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area == 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q has zero area", s.Name)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
