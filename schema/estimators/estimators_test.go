package estimators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ionworks/ionworks-schema/schema"
)

func TestTagOnlyEstimators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		est      schema.Configurer
		wantType string
	}{
		{est: Optimizer{}, wantType: "Optimizer"},
		{est: Sampler{}, wantType: "Sampler"},
		{est: ParameterEstimator{}, wantType: "ParameterEstimator"},
		{est: CMAES{}, wantType: "CMAES"},
		{est: PSO{}, wantType: "PSO"},
		{est: SNES{}, wantType: "SNES"},
		{est: XNES{}, wantType: "XNES"},
		{est: PDFO{}, wantType: "PDFO"},
		{est: PointEstimateOptimizer{}, wantType: "PointEstimateOptimizer"},
		{est: PointEstimateSampler{}, wantType: "PointEstimateSampler"},
		{est: DummyOptimizer{}, wantType: "DummyOptimizer"},
		{est: DummySampler{}, wantType: "DummySampler"},
		{est: ScipyBasinhopping{}, wantType: "ScipyBasinhopping"},
		{est: ScipyDifferentialEvolution{}, wantType: "ScipyDifferentialEvolution"},
		{est: ScipyDualAnnealing{}, wantType: "ScipyDualAnnealing"},
		{est: ScipyLeastSquares{}, wantType: "ScipyLeastSquares"},
		{est: ScipyMinimize{}, wantType: "ScipyMinimize"},
		{est: ScipyShgo{}, wantType: "ScipyShgo"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, schema.Config{"type": tt.wantType}, tt.est.Config())
		})
	}
}

func TestGridSearchDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, schema.Config{"type": "GridSearch", "npts": 10}, GridSearch{}.Config())
	require.Equal(t, 25, GridSearch{Npts: 25}.Config()["npts"])
}

func TestPintsOptimizerDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewPintsOptimizer().Config()
	require.Equal(t, schema.Config{
		"type":                     "PintsOptimizer",
		"method":                   "CMAES",
		"log_to_screen":            false,
		"max_iterations":           300,
		"max_unchanged_iterations": 75,
		"min_iterations":           1,
		"max_evaluations":          1000000,
		"absolute_tolerance":       1e-5,
		"relative_tolerance":       0.01,
		"use_f_guessed":            false,
	}, cfg)

	// Zero value serializes identically to the defaults.
	require.Equal(t, cfg, (&PintsOptimizer{}).Config())
}

func TestPintsOptimizerOverrides(t *testing.T) {
	t.Parallel()

	p := NewPintsOptimizer()
	p.Method = "PSO"
	p.MaxIterations = 500
	p.PopulationSize = 40
	p.AlgorithmOptions = map[string]any{"sigma": 0.1}

	cfg := p.Config()
	require.Equal(t, "PSO", cfg["method"])
	require.Equal(t, 500, cfg["max_iterations"])
	require.Equal(t, 40, cfg["population_size"])
	require.Equal(t, map[string]any{"sigma": 0.1}, cfg["algorithm_options"])
}

func TestPintsSamplerDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewPintsSampler().Config()
	require.Equal(t, schema.Config{
		"type":           "PintsSampler",
		"method":         "DramACMC",
		"log_to_screen":  false,
		"max_iterations": 1000,
	}, cfg)

	s := NewPintsSampler()
	s.BurninIterations = 200
	require.Equal(t, 200, s.Config()["burnin_iterations"])
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	require.Equal(t, schema.Config{"type": "Interactive"}, Interactive{}.Config())
	require.Equal(t, "plot_voltage", Interactive{PlotFunction: "plot_voltage"}.Config()["plot_function"])
}
