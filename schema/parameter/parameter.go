// Package parameter defines the fit parameter schema used by data fits.
package parameter

import (
	"errors"

	"github.com/ionworks/ionworks-schema/schema"
)

var (
	// ErrMissingName is returned when a parameter has no name.
	ErrMissingName = errors.New("parameter name must be set")
	// ErrInvalidBounds is returned when bounds are not strictly increasing.
	ErrInvalidBounds = errors.New("bounds must be strictly increasing")
)

// Bounds is the closed interval a parameter is allowed to take values in.
type Bounds struct {
	Lower float64
	Upper float64
}

// Parameter is a named quantity to be fitted, with its initial value, bounds
// and optional prior. The name keys the parameter in a data fit's parameters
// map and is not repeated inside the exported config.
type Parameter struct {
	Name                     string
	InitialValue             *float64
	Bounds                   *Bounds
	Prior                    schema.Configurer
	Normalize                *bool
	CheckBounds              *bool
	CheckInitialValue        *bool
	InitialGuessDistribution schema.Configurer
}

// New returns a parameter with the given name. Optional fields are set
// directly on the returned struct.
func New(name string) *Parameter {
	return &Parameter{Name: name}
}

// Validate checks the parameter's invariants.
func (p *Parameter) Validate() error {
	if p.Name == "" {
		return ErrMissingName
	}
	if p.Bounds != nil && p.Bounds.Lower >= p.Bounds.Upper {
		return ErrInvalidBounds
	}
	return nil
}

func (p *Parameter) Config() schema.Config {
	cfg := schema.Config{}
	schema.Put(cfg, "initial_value", p.InitialValue)
	if p.Bounds != nil {
		cfg["bounds"] = []any{p.Bounds.Lower, p.Bounds.Upper}
	}
	schema.Put(cfg, "prior", p.Prior)
	schema.Put(cfg, "normalize", p.Normalize)
	schema.Put(cfg, "check_bounds", p.CheckBounds)
	schema.Put(cfg, "check_initial_value", p.CheckInitialValue)
	schema.Put(cfg, "initial_guess_distribution", p.InitialGuessDistribution)
	return cfg
}
