// Package costs defines the cost function schemas used to score a fit. The
// error-function family shares scale, NaN handling and weight options.
package costs

import (
	"errors"

	"github.com/ionworks/ionworks-schema/schema"
)

// ErrMissingDistribution is returned when a prior has no distribution.
var ErrMissingDistribution = errors.New("prior distribution must be set")

// errorParams holds the options shared by the error-function cost family.
// Scale defaults to "mean": per-variable errors are scaled by the data mean
// before accumulation.
type errorParams struct {
	Scale            any
	NaNValues        any
	ObjectiveWeights map[string]float64
	VariableWeights  map[string]float64
}

func (p errorParams) config(typ string) schema.Config {
	scale := p.Scale
	if scale == nil {
		scale = "mean"
	}
	cfg := schema.Config{"type": typ, "scale": scale}
	schema.Put(cfg, "nan_values", p.NaNValues)
	schema.Put(cfg, "objective_weights", p.ObjectiveWeights)
	schema.Put(cfg, "variable_weights", p.VariableWeights)
	return cfg
}

// ErrorFunction is the generic error cost.
type ErrorFunction struct{ errorParams }

func (c ErrorFunction) Config() schema.Config { return c.config("ErrorFunction") }

// MAE is the mean absolute error cost.
type MAE struct{ errorParams }

func (c MAE) Config() schema.Config { return c.config("MAE") }

// MLE is the maximum likelihood cost.
type MLE struct{ errorParams }

func (c MLE) Config() schema.Config { return c.config("MLE") }

// MSE is the mean squared error cost.
type MSE struct{ errorParams }

func (c MSE) Config() schema.Config { return c.config("MSE") }

// Max is the maximum error cost.
type Max struct{ errorParams }

func (c Max) Config() schema.Config { return c.config("Max") }

// RMSE is the root mean squared error cost.
type RMSE struct{ errorParams }

func (c RMSE) Config() schema.Config { return c.config("RMSE") }

// SSE is the sum of squared errors cost.
type SSE struct{ errorParams }

func (c SSE) Config() schema.Config { return c.config("SSE") }

// Difference is the model-minus-data cost with squared weights.
//
// Deprecated: use MLE.
type Difference struct{}

func (Difference) Config() schema.Config { return schema.Config{"type": "Difference"} }

// ChiSquare is the chi-squared cost. VariableStandardDeviations maps each
// output variable to its measurement standard deviation.
type ChiSquare struct {
	VariableStandardDeviations any
	NaNValues                  any
}

func (c ChiSquare) Config() schema.Config {
	cfg := schema.Config{"type": "ChiSquare"}
	schema.Put(cfg, "variable_standard_deviations", c.VariableStandardDeviations)
	schema.Put(cfg, "nan_values", c.NaNValues)
	return cfg
}

// GaussianLogLikelihood scores the fit under a Gaussian noise model with the
// given sigma.
type GaussianLogLikelihood struct {
	Sigma     any
	NaNValues any
}

func (c GaussianLogLikelihood) Config() schema.Config {
	cfg := schema.Config{"type": "GaussianLogLikelihood"}
	schema.Put(cfg, "sigma", c.Sigma)
	schema.Put(cfg, "nan_values", c.NaNValues)
	return cfg
}

// MultiCost accumulates several costs into one.
type MultiCost struct {
	Costs       any
	Accumulator any
	errorParams
}

func (c MultiCost) Config() schema.Config {
	cfg := c.config("MultiCost")
	schema.Put(cfg, "costs", c.Costs)
	schema.Put(cfg, "accumulator", c.Accumulator)
	return cfg
}

// ObjectiveFunction weights objectives and variables explicitly.
type ObjectiveFunction struct {
	ObjectiveWeights map[string]float64
	VariableWeights  map[string]float64
}

func (c ObjectiveFunction) Config() schema.Config {
	cfg := schema.Config{"type": "ObjectiveFunction"}
	schema.Put(cfg, "objective_weights", c.ObjectiveWeights)
	schema.Put(cfg, "variable_weights", c.VariableWeights)
	return cfg
}

// Cost is the base cost marker.
type Cost struct{}

func (Cost) Config() schema.Config { return schema.Config{"type": "Cost"} }

// DesignFunction scores design optimization objectives. Unweighted
// objectives default to a weight of 1.
type DesignFunction struct {
	ObjectiveWeights map[string]float64
}

func (c DesignFunction) Config() schema.Config {
	cfg := schema.Config{"type": "DesignFunction"}
	schema.Put(cfg, "objective_weights", c.ObjectiveWeights)
	return cfg
}

// Prior regularizes a named parameter towards a distribution. The name keys
// the prior in the fit and is not repeated inside the exported config.
type Prior struct {
	Name              string
	Distribution      schema.Configurer
	RegularizerWeight *float64
}

// NewPrior returns a prior for the named parameter.
func NewPrior(name string, distribution schema.Configurer) *Prior {
	return &Prior{Name: name, Distribution: distribution}
}

func (p *Prior) Validate() error {
	if p.Distribution == nil {
		return ErrMissingDistribution
	}
	return nil
}

func (p *Prior) Config() schema.Config {
	cfg := schema.Config{"type": "Prior"}
	schema.Put(cfg, "distribution", p.Distribution)
	schema.Put(cfg, "regularizer_weight", p.RegularizerWeight)
	return cfg
}
