// Package datafit defines the pipeline elements that fit model parameters to
// experimental data.
package datafit

import (
	"errors"
	"fmt"

	"github.com/ionworks/ionworks-schema/schema"
)

var (
	// ErrMissingObjectives is returned when a fit has no objectives.
	ErrMissingObjectives = errors.New("objectives must be specified")
	// ErrMissingParametersOrPriors is returned when neither parameters nor
	// priors are given.
	ErrMissingParametersOrPriors = errors.New("either parameters or priors must be specified")
	// ErrParametersAndPriors is returned when both parameters and priors are
	// given.
	ErrParametersAndPriors = errors.New("only one of parameters or priors can be specified")
)

// DataFit fits a model to data by minimizing a cost over the given
// parameters. Objectives can be a single objective schema or a map of named
// objectives. Exactly one of Parameters or Priors must be set.
type DataFit struct {
	Objectives any
	Source     string
	// Parameters maps parameter names to values, parameter schemas or
	// transform schemas.
	Parameters map[string]any
	Cost       schema.Configurer
	// InitialGuesses is a single guess map or a list of guess maps, one per
	// optimization job.
	InitialGuesses any
	Optimizer      schema.Configurer
	CostLogger     any
	// Multistarts is the number of optimization runs from sampled initial
	// guesses. Zero runs once from the provided guess.
	Multistarts int
	// NumWorkers is the number of worker processes for batch parallelism.
	// Zero lets the executor pick.
	NumWorkers int
	// Parallel controls optimizer-level parallelism. Nil lets the executor
	// decide based on the job layout.
	Parallel            *bool
	MaxBatchSize        int
	InitialGuessSampler schema.Configurer
	Priors              []schema.Configurer
	Options             map[string]any
}

// New returns a data fit over the given objectives.
func New(objectives any) *DataFit {
	return &DataFit{Objectives: objectives}
}

// Validate checks the parameters-or-priors invariant and any nested
// objective and parameter invariants.
func (d *DataFit) Validate() error {
	if d.Objectives == nil {
		return ErrMissingObjectives
	}
	if err := schema.ValidateEach("objective", d.Objectives); err != nil {
		return err
	}
	hasParameters := len(d.Parameters) > 0
	hasPriors := len(d.Priors) > 0
	if !hasParameters && !hasPriors {
		return ErrMissingParametersOrPriors
	}
	if hasParameters && hasPriors {
		return ErrParametersAndPriors
	}
	for name, v := range d.Parameters {
		pv, ok := v.(schema.Validator)
		if !ok {
			continue
		}
		if err := pv.Validate(); err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
	}
	return nil
}

func (d *DataFit) Config() schema.Config {
	cfg := schema.Config{}
	if d.Source != "" {
		cfg["source"] = d.Source
	}
	schema.Put(cfg, "objectives", d.Objectives)
	schema.Put(cfg, "parameters", d.Parameters)
	schema.Put(cfg, "cost", d.Cost)
	schema.Put(cfg, "initial_guesses", d.InitialGuesses)
	schema.Put(cfg, "optimizer", d.Optimizer)
	schema.Put(cfg, "cost_logger", d.CostLogger)
	if d.Multistarts > 0 {
		cfg["multistarts"] = d.Multistarts
	}
	if d.NumWorkers > 0 {
		cfg["num_workers"] = d.NumWorkers
	}
	schema.Put(cfg, "parallel", d.Parallel)
	if d.MaxBatchSize > 0 {
		cfg["max_batch_size"] = d.MaxBatchSize
	}
	schema.Put(cfg, "initial_guess_sampler", d.InitialGuessSampler)
	schema.Put(cfg, "priors", d.Priors)
	schema.Put(cfg, "options", d.Options)
	return cfg
}

func (*DataFit) ElementKind() schema.Kind { return schema.KindDataFit }

// ArrayDataFit runs a separate fit for each objective in the map, keyed by
// the value of an independent variable such as temperature. Each objective
// carries the independent variable value in its own custom parameters.
type ArrayDataFit struct {
	DataFit
}

// NewArray returns an array data fit over objectives keyed by independent
// variable value.
func NewArray(objectives map[string]schema.Configurer) *ArrayDataFit {
	return &ArrayDataFit{DataFit{Objectives: objectives}}
}
