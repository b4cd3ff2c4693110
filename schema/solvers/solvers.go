// Package solvers defines the solver configurations a simulation can
// request. Solver configs are strict: they carry a fixed type discriminator
// and Decode rejects unknown solver types and unknown keys.
package solvers

import (
	"errors"
	"fmt"

	"github.com/ionworks/ionworks-schema/schema"
)

var (
	// ErrUnknownSolverType is returned when a config names a solver this
	// package does not define.
	ErrUnknownSolverType = errors.New("unknown solver type")
	// ErrUnknownSolverKey is returned when a solver config carries a key the
	// solver does not accept.
	ErrUnknownSolverKey = errors.New("unknown solver config key")
)

// Scipy solves ODEs with scipy.integrate.solve_ivp.
type Scipy struct {
	// Method is the integration method, e.g. "RK45" or "BDF".
	Method       string
	Rtol         *float64
	Atol         *float64
	ExtraOptions map[string]any
}

func (s Scipy) Config() schema.Config {
	cfg := schema.Config{"type": "ScipySolver"}
	if s.Method != "" {
		cfg["method"] = s.Method
	}
	schema.Put(cfg, "rtol", s.Rtol)
	schema.Put(cfg, "atol", s.Atol)
	schema.Put(cfg, "extra_options", s.ExtraOptions)
	return cfg
}

// Casadi solves DAEs with the CasADi integrator.
type Casadi struct {
	// Mode is "safe" or "fast".
	Mode                              string
	Rtol                              *float64
	Atol                              *float64
	PerturbAlgebraicInitialConditions *bool
}

func (s Casadi) Config() schema.Config {
	cfg := schema.Config{"type": "CasadiSolver"}
	if s.Mode != "" {
		cfg["mode"] = s.Mode
	}
	schema.Put(cfg, "rtol", s.Rtol)
	schema.Put(cfg, "atol", s.Atol)
	schema.Put(cfg, "perturb_algebraic_initial_conditions", s.PerturbAlgebraicInitialConditions)
	return cfg
}

// IDAKLU solves DAEs with the SUNDIALS IDA solver and KLU linear solver.
type IDAKLU struct {
	Rtol    *float64
	Atol    *float64
	Options map[string]any
}

func (s IDAKLU) Config() schema.Config {
	cfg := schema.Config{"type": "IDAKLUSolver"}
	schema.Put(cfg, "rtol", s.Rtol)
	schema.Put(cfg, "atol", s.Atol)
	schema.Put(cfg, "options", s.Options)
	return cfg
}

// Algebraic solves algebraic systems by root finding.
type Algebraic struct {
	// Method is the root-finding method, e.g. "hybr" or "lm".
	Method       string
	Tol          *float64
	ExtraOptions map[string]any
}

func (s Algebraic) Config() schema.Config {
	cfg := schema.Config{"type": "AlgebraicSolver"}
	if s.Method != "" {
		cfg["method"] = s.Method
	}
	schema.Put(cfg, "tol", s.Tol)
	schema.Put(cfg, "extra_options", s.ExtraOptions)
	return cfg
}

// CasadiAlgebraic solves algebraic systems with the CasADi root finder.
type CasadiAlgebraic struct {
	Tol     *float64
	StepTol *float64
}

func (s CasadiAlgebraic) Config() schema.Config {
	cfg := schema.Config{"type": "CasadiAlgebraicSolver"}
	schema.Put(cfg, "tol", s.Tol)
	schema.Put(cfg, "step_tol", s.StepTol)
	return cfg
}

// Composite tries each sub-solver in order until one succeeds.
type Composite struct {
	SubSolvers []schema.Configurer
}

func (s Composite) Config() schema.Config {
	return schema.Config{
		"type":        "CompositeSolver",
		"sub_solvers": schema.Value(s.SubSolvers),
	}
}

// allowedKeys lists the config keys each solver type accepts, beyond "type".
var allowedKeys = map[string][]string{
	"ScipySolver":           {"method", "rtol", "atol", "extra_options"},
	"CasadiSolver":          {"mode", "rtol", "atol", "perturb_algebraic_initial_conditions"},
	"IDAKLUSolver":          {"rtol", "atol", "options"},
	"AlgebraicSolver":       {"method", "tol", "extra_options"},
	"CasadiAlgebraicSolver": {"tol", "step_tol"},
	"CompositeSolver":       {"sub_solvers"},
}

// Validate checks a raw solver config against the known solver types and
// their accepted keys. Composite sub-solver configs are checked recursively.
func Validate(cfg map[string]any) error {
	typ, _ := cfg["type"].(string)
	keys, ok := allowedKeys[typ]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSolverType, typ)
	}
	allowed := map[string]struct{}{"type": {}}
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	for k := range cfg {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("%w: %q not accepted by %s", ErrUnknownSolverKey, k, typ)
		}
	}
	if typ != "CompositeSolver" {
		return nil
	}
	subs, _ := cfg["sub_solvers"].([]any)
	for i, sub := range subs {
		subCfg, ok := sub.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: sub-solver %d is not a config", ErrUnknownSolverType, i)
		}
		if err := Validate(subCfg); err != nil {
			return fmt.Errorf("sub-solver %d: %w", i, err)
		}
	}
	return nil
}
