// Package estimators defines the optimizer and sampler schemas a data fit
// can request. Most estimators are selected by type tag alone; the Pints
// wrappers expose the full option surface of the underlying library.
package estimators

import "github.com/ionworks/ionworks-schema/schema"

// Optimizer is the base optimizer marker.
type Optimizer struct{}

// Sampler is the base sampler marker.
type Sampler struct{}

// ParameterEstimator is the base estimator marker.
type ParameterEstimator struct{}

// CMAES is covariance matrix adaptation evolution strategy, effective for
// ill-conditioned and noisy non-linear problems.
type CMAES struct{}

// PSO is particle swarm optimization.
type PSO struct{}

// SNES is separable natural evolution strategy.
type SNES struct{}

// XNES is exponential natural evolution strategy.
type XNES struct{}

// PDFO wraps Powell's derivative-free optimization solvers.
type PDFO struct{}

// PointEstimateOptimizer evaluates the objective once at the initial guess.
type PointEstimateOptimizer struct{}

// PointEstimateSampler draws a single point estimate.
type PointEstimateSampler struct{}

// DummyOptimizer is the legacy name for PointEstimateOptimizer.
//
// Deprecated: use PointEstimateOptimizer.
type DummyOptimizer struct{}

// DummySampler is the legacy name for PointEstimateSampler.
//
// Deprecated: use PointEstimateSampler.
type DummySampler struct{}

// ScipyBasinhopping wraps scipy.optimize.basinhopping.
type ScipyBasinhopping struct{}

// ScipyDifferentialEvolution wraps scipy.optimize.differential_evolution.
type ScipyDifferentialEvolution struct{}

// ScipyDualAnnealing wraps scipy.optimize.dual_annealing.
type ScipyDualAnnealing struct{}

// ScipyLeastSquares wraps scipy.optimize.least_squares.
type ScipyLeastSquares struct{}

// ScipyMinimize wraps scipy.optimize.minimize.
type ScipyMinimize struct{}

// ScipyShgo wraps scipy.optimize.shgo.
type ScipyShgo struct{}

func (Optimizer) Config() schema.Config              { return schema.Config{"type": "Optimizer"} }
func (Sampler) Config() schema.Config                { return schema.Config{"type": "Sampler"} }
func (ParameterEstimator) Config() schema.Config     { return schema.Config{"type": "ParameterEstimator"} }
func (CMAES) Config() schema.Config                  { return schema.Config{"type": "CMAES"} }
func (PSO) Config() schema.Config                    { return schema.Config{"type": "PSO"} }
func (SNES) Config() schema.Config                   { return schema.Config{"type": "SNES"} }
func (XNES) Config() schema.Config                   { return schema.Config{"type": "XNES"} }
func (PDFO) Config() schema.Config                   { return schema.Config{"type": "PDFO"} }
func (PointEstimateOptimizer) Config() schema.Config { return schema.Config{"type": "PointEstimateOptimizer"} }
func (PointEstimateSampler) Config() schema.Config   { return schema.Config{"type": "PointEstimateSampler"} }
func (DummyOptimizer) Config() schema.Config         { return schema.Config{"type": "DummyOptimizer"} }
func (DummySampler) Config() schema.Config           { return schema.Config{"type": "DummySampler"} }
func (ScipyBasinhopping) Config() schema.Config      { return schema.Config{"type": "ScipyBasinhopping"} }
func (ScipyDifferentialEvolution) Config() schema.Config {
	return schema.Config{"type": "ScipyDifferentialEvolution"}
}
func (ScipyDualAnnealing) Config() schema.Config { return schema.Config{"type": "ScipyDualAnnealing"} }
func (ScipyLeastSquares) Config() schema.Config  { return schema.Config{"type": "ScipyLeastSquares"} }
func (ScipyMinimize) Config() schema.Config      { return schema.Config{"type": "ScipyMinimize"} }
func (ScipyShgo) Config() schema.Config          { return schema.Config{"type": "ScipyShgo"} }

// GridSearch explores parameter space on a regular grid with Npts points in
// each dimension.
type GridSearch struct {
	Npts int
}

func (g GridSearch) Config() schema.Config {
	npts := g.Npts
	if npts == 0 {
		npts = 10
	}
	return schema.Config{"type": "GridSearch", "npts": npts}
}

// Interactive is the notebook slider optimizer. PlotFunction names a
// plotting helper registered on the executor.
type Interactive struct {
	PlotFunction string
}

func (i Interactive) Config() schema.Config {
	cfg := schema.Config{"type": "Interactive"}
	if i.PlotFunction != "" {
		cfg["plot_function"] = i.PlotFunction
	}
	return cfg
}

// PintsOptimizer wraps the Pints optimization library. Zero-valued fields
// fall back to the executor defaults listed on each field.
type PintsOptimizer struct {
	// Method is the Pints method name, default "CMAES".
	Method      string
	LogToScreen bool
	Sigma0      any
	// MaxIterations defaults to 300.
	MaxIterations int
	// MaxUnchangedIterations defaults to 75.
	MaxUnchangedIterations          int
	MaxUnchangedIterationsThreshold *float64
	// MinIterations defaults to 1.
	MinIterations int
	// MaxEvaluations defaults to 1e6.
	MaxEvaluations int
	PopulationSize int
	Threshold      *float64
	// AbsoluteTolerance defaults to 1e-5.
	AbsoluteTolerance float64
	// RelativeTolerance defaults to 0.01.
	RelativeTolerance float64
	UseFGuessed       bool
	AlgorithmOptions  map[string]any
}

// NewPintsOptimizer returns a Pints optimizer with the executor defaults
// filled in.
func NewPintsOptimizer() *PintsOptimizer {
	return &PintsOptimizer{
		Method:                 "CMAES",
		MaxIterations:          300,
		MaxUnchangedIterations: 75,
		MinIterations:          1,
		MaxEvaluations:         1000000,
		AbsoluteTolerance:      1e-5,
		RelativeTolerance:      0.01,
	}
}

func (p *PintsOptimizer) Config() schema.Config {
	defaults := NewPintsOptimizer()
	method := p.Method
	if method == "" {
		method = defaults.Method
	}
	maxIterations := p.MaxIterations
	if maxIterations == 0 {
		maxIterations = defaults.MaxIterations
	}
	maxUnchanged := p.MaxUnchangedIterations
	if maxUnchanged == 0 {
		maxUnchanged = defaults.MaxUnchangedIterations
	}
	minIterations := p.MinIterations
	if minIterations == 0 {
		minIterations = defaults.MinIterations
	}
	maxEvaluations := p.MaxEvaluations
	if maxEvaluations == 0 {
		maxEvaluations = defaults.MaxEvaluations
	}
	absTol := p.AbsoluteTolerance
	if absTol == 0 {
		absTol = defaults.AbsoluteTolerance
	}
	relTol := p.RelativeTolerance
	if relTol == 0 {
		relTol = defaults.RelativeTolerance
	}
	cfg := schema.Config{
		"type":                     "PintsOptimizer",
		"method":                   method,
		"log_to_screen":            p.LogToScreen,
		"max_iterations":           maxIterations,
		"max_unchanged_iterations": maxUnchanged,
		"min_iterations":           minIterations,
		"max_evaluations":          maxEvaluations,
		"absolute_tolerance":       absTol,
		"relative_tolerance":       relTol,
		"use_f_guessed":            p.UseFGuessed,
	}
	schema.Put(cfg, "sigma0", p.Sigma0)
	schema.Put(cfg, "max_unchanged_iterations_threshold", p.MaxUnchangedIterationsThreshold)
	if p.PopulationSize > 0 {
		cfg["population_size"] = p.PopulationSize
	}
	schema.Put(cfg, "threshold", p.Threshold)
	schema.Put(cfg, "algorithm_options", p.AlgorithmOptions)
	return cfg
}

// PintsSampler wraps the Pints MCMC samplers.
type PintsSampler struct {
	// Method is the Pints sampler name, default "DramACMC".
	Method      string
	LogToScreen bool
	// MaxIterations defaults to 1000.
	MaxIterations          int
	BurninIterations       int
	InitialPhaseIterations int
}

// NewPintsSampler returns a Pints sampler with the executor defaults filled
// in.
func NewPintsSampler() *PintsSampler {
	return &PintsSampler{Method: "DramACMC", MaxIterations: 1000}
}

func (p *PintsSampler) Config() schema.Config {
	method := p.Method
	if method == "" {
		method = "DramACMC"
	}
	maxIterations := p.MaxIterations
	if maxIterations == 0 {
		maxIterations = 1000
	}
	cfg := schema.Config{
		"type":           "PintsSampler",
		"method":         method,
		"log_to_screen":  p.LogToScreen,
		"max_iterations": maxIterations,
	}
	if p.BurninIterations > 0 {
		cfg["burnin_iterations"] = p.BurninIterations
	}
	if p.InitialPhaseIterations > 0 {
		cfg["initial_phase_iterations"] = p.InitialPhaseIterations
	}
	return cfg
}
