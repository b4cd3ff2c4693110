// Package directentries defines pipeline elements that supply parameter
// values directly, without calculation or fitting: literal value maps,
// initial state setters and piecewise interpolation entries.
package directentries

import "github.com/ionworks/ionworks-schema/schema"

// entry marks a type as an entry pipeline element.
type entry struct{}

func (entry) ElementKind() schema.Kind { return schema.KindEntry }

// DirectEntry supplies pre-defined parameter values, typically from
// literature or manufacturer specifications.
type DirectEntry struct {
	// Parameters maps parameter names to the values to provide.
	Parameters map[string]any
	// Source describes where the values came from. Recorded on the schema
	// only; it is not exported to the config.
	Source string
	entry
}

// New returns a direct entry over the given parameter values.
func New(parameters map[string]any) *DirectEntry {
	return &DirectEntry{Parameters: parameters}
}

func (d *DirectEntry) Config() schema.Config {
	values := schema.Value(d.Parameters)
	if values == nil {
		values = map[string]any{}
	}
	return schema.Config{"element_type": "entry", "values": values}
}

// InitialStateOfCharge sets the initial state of charge as a percentage.
type InitialStateOfCharge struct {
	Value float64
	entry
}

func (e InitialStateOfCharge) Config() schema.Config {
	return schema.Config{
		"element_type": "entry",
		"values":       map[string]any{"Initial SOC [%]": e.Value},
	}
}

// InitialTemperature sets the initial and ambient temperatures in Kelvin.
type InitialTemperature struct {
	Value float64
	entry
}

func (e InitialTemperature) Config() schema.Config {
	return schema.Config{
		"element_type": "entry",
		"values": map[string]any{
			"Ambient temperature [K]": e.Value,
			"Initial temperature [K]": e.Value,
		},
	}
}

// InitialVoltage sets the initial voltage in volts.
type InitialVoltage struct {
	Value float64
	entry
}

func (e InitialVoltage) Config() schema.Config {
	return schema.Config{
		"element_type": "entry",
		"values":       map[string]any{"Initial voltage [V]": e.Value},
	}
}

const (
	defaultSmoothing = 1e-4

	FormulationKnots  = "knots"
	FormulationSlopes = "slopes"
)

// PiecewiseInterpolation1D creates a piecewise linear interpolation for a
// parameter that varies with a breakpoint parameter such as SOC or
// temperature. The breakpoint fields are exported alongside the values so
// the parser can reconstruct the interpolant.
type PiecewiseInterpolation1D struct {
	BaseParameterName       string
	BreakpointValues        []float64
	BreakpointParameterName string
	// Smoothing controls the heaviside transition width. Zero means the
	// default of 1e-4.
	Smoothing float64
	// Formulation is "knots" (default, fit values at each breakpoint) or
	// "slopes" (fit an initial value and slopes).
	Formulation string
	Parameters  map[string]any
	Source      string
	entry
}

func (e PiecewiseInterpolation1D) Config() schema.Config {
	values := schema.Value(e.Parameters)
	if values == nil {
		values = map[string]any{}
	}
	smoothing := e.Smoothing
	if smoothing == 0 {
		smoothing = defaultSmoothing
	}
	formulation := e.Formulation
	if formulation == "" {
		formulation = FormulationKnots
	}
	return schema.Config{
		"element_type":              "entry",
		"values":                    values,
		"base_parameter_name":       e.BaseParameterName,
		"breakpoint_values":         schema.Value(e.BreakpointValues),
		"breakpoint_parameter_name": e.BreakpointParameterName,
		"smoothing":                 smoothing,
		"formulation":               formulation,
	}
}

// PiecewiseInterpolation2D creates a piecewise bilinear interpolation for a
// parameter that varies with two breakpoint parameters, such as SOC and
// temperature.
type PiecewiseInterpolation2D struct {
	BaseParameterName        string
	Breakpoint1Values        []float64
	Breakpoint1ParameterName string
	Breakpoint2Values        []float64
	Breakpoint2ParameterName string
	Smoothing1               float64
	Smoothing2               float64
	Formulation              string
	Parameters               map[string]any
	Source                   string
	entry
}

func (e PiecewiseInterpolation2D) Config() schema.Config {
	values := schema.Value(e.Parameters)
	if values == nil {
		values = map[string]any{}
	}
	smoothing1 := e.Smoothing1
	if smoothing1 == 0 {
		smoothing1 = defaultSmoothing
	}
	smoothing2 := e.Smoothing2
	if smoothing2 == 0 {
		smoothing2 = defaultSmoothing
	}
	formulation := e.Formulation
	if formulation == "" {
		formulation = FormulationKnots
	}
	return schema.Config{
		"element_type":               "entry",
		"values":                     values,
		"base_parameter_name":        e.BaseParameterName,
		"breakpoint1_values":         schema.Value(e.Breakpoint1Values),
		"breakpoint1_parameter_name": e.Breakpoint1ParameterName,
		"breakpoint2_values":         schema.Value(e.Breakpoint2Values),
		"breakpoint2_parameter_name": e.Breakpoint2ParameterName,
		"smoothing1":                 smoothing1,
		"smoothing2":                 smoothing2,
		"formulation":                formulation,
	}
}
