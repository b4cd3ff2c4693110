package calculations

import "github.com/ionworks/ionworks-schema/schema"

// SlopesToKnots converts a piecewise interpolation fitted in the "slopes"
// formulation back to knot values.
type SlopesToKnots struct {
	BaseParameterName       string
	BreakpointValues        []float64
	BreakpointParameterName string
	calculation
}

func (c SlopesToKnots) Config() schema.Config {
	return schema.Config{
		"type":                      "SlopesToKnots",
		"base_parameter_name":       c.BaseParameterName,
		"breakpoint_values":         schema.Value(c.BreakpointValues),
		"breakpoint_parameter_name": c.BreakpointParameterName,
	}
}

// SlopesToKnots2D converts a 2D piecewise interpolation fitted in the
// "slopes" formulation back to knot values.
type SlopesToKnots2D struct {
	BaseParameterName        string
	Breakpoint1Values        []float64
	Breakpoint1ParameterName string
	Breakpoint2Values        []float64
	Breakpoint2ParameterName string
	calculation
}

func (c SlopesToKnots2D) Config() schema.Config {
	return schema.Config{
		"type":                       "SlopesToKnots2D",
		"base_parameter_name":        c.BaseParameterName,
		"breakpoint1_values":         schema.Value(c.Breakpoint1Values),
		"breakpoint1_parameter_name": c.Breakpoint1ParameterName,
		"breakpoint2_values":         schema.Value(c.Breakpoint2Values),
		"breakpoint2_parameter_name": c.Breakpoint2ParameterName,
	}
}
