// Package scenario describes a single beam analysis request and runs it.
// Scenarios come from command-line flags, JSON/YAML files or spreadsheet rows.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Scenario holds the inputs of one analysis
type Scenario struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Condition string `json:"condition" yaml:"condition" validate:"required,oneof=simply-supported two-span-unequal"`

	// Geometry (m)
	PrimarySpan   float64 `json:"primary_span" yaml:"primary_span" validate:"gt=0"`
	SecondarySpan float64 `json:"secondary_span,omitempty" yaml:"secondary_span,omitempty" validate:"gte=0"`

	// Stiffness (N·mm²). Zero is accepted and yields an all-zero deflection diagram.
	EI float64 `json:"ei" yaml:"ei" validate:"gte=0"`

	// Uniform load (kN/m)
	Load float64 `json:"load" yaml:"load"`

	// Dimensionless factor applied to every diagram. Nil means "use the default";
	// an explicit zero is rejected.
	Factor *float64 `json:"factor,omitempty" yaml:"factor,omitempty" validate:"omitempty,ne=0"`
}

// ValidationError lists the scenario fields that failed validation
type ValidationError struct {
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	return "invalid scenario: " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WithDefaults returns a copy with a normalized condition tag and the given
// factor applied when none was set
func (s Scenario) WithDefaults(factor float64) Scenario {
	s.Condition = strings.ToLower(strings.TrimSpace(s.Condition))
	if s.Factor == nil {
		s.Factor = &factor
	}
	return s
}

// SetFactor sets an explicit factor
func (s *Scenario) SetFactor(f float64) {
	s.Factor = &f
}

// EffectiveFactor returns the factor, or beam.DefaultFactor when none was set
func (s Scenario) EffectiveFactor() float64 {
	if s.Factor == nil {
		return beam.DefaultFactor
	}
	return *s.Factor
}

// Validate checks the scenario inputs
func (s Scenario) Validate() error {
	var fields []string

	err := validate.Struct(s)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	} else if err != nil {
		return err
	}

	numeric := []struct {
		name string
		v    float64
	}{
		{"primary_span", s.PrimarySpan},
		{"secondary_span", s.SecondarySpan},
		{"ei", s.EI},
		{"load", s.Load},
		{"factor", s.EffectiveFactor()},
	}
	for _, n := range numeric {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			fields = append(fields, fmt.Sprintf("%s must be finite", n.name))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields, err: err}
	}
	return nil
}

// Beam builds the beam and condition described by the scenario
func (s Scenario) Beam() (*beam.Beam, beam.Condition, error) {
	c, err := beam.ParseCondition(s.Condition)
	if err != nil {
		return nil, 0, err
	}
	return beam.NewBeam(s.PrimarySpan, s.SecondarySpan, beam.NewMaterial(s.EI)), c, nil
}

// LoadFile reads a scenario from a JSON or YAML file
func LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}

	var s Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}
