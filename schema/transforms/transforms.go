// Package transforms defines parameter transformation schemas. A transform
// wraps a parameter (or another transform) so it is fitted in a different
// space, e.g. log space for scale parameters.
package transforms

import "github.com/ionworks/ionworks-schema/schema"

func config(typ string, parameter any) schema.Config {
	return schema.Config{"parameter": schema.Value(parameter), "type": typ}
}

// Exp fits e raised to the parameter value. Monotonic.
type Exp struct{ Parameter any }

func (t Exp) Config() schema.Config { return config("Exp", t.Parameter) }

// Identity returns the parameter unchanged.
type Identity struct{ Parameter any }

func (t Identity) Config() schema.Config { return config("Identity", t.Parameter) }

// Inverse fits the reciprocal of the parameter. Not monotonic; the parameter
// cannot take the value zero.
type Inverse struct{ Parameter any }

func (t Inverse) Config() schema.Config { return config("Inverse", t.Parameter) }

// Log fits the natural logarithm of the parameter. Requires positive values.
type Log struct{ Parameter any }

func (t Log) Config() schema.Config { return config("Log", t.Parameter) }

// Log10 fits the base-10 logarithm of the parameter. Requires positive values.
type Log10 struct{ Parameter any }

func (t Log10) Config() schema.Config { return config("Log10", t.Parameter) }

// Negate fits the negated parameter value.
type Negate struct{ Parameter any }

func (t Negate) Config() schema.Config { return config("Negate", t.Parameter) }

// Pow10 fits 10 raised to the parameter value. Monotonic.
type Pow10 struct{ Parameter any }

func (t Pow10) Config() schema.Config { return config("Pow10", t.Parameter) }
