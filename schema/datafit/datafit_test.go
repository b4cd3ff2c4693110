package datafit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ionworks/ionworks-schema/schema"
	"github.com/ionworks/ionworks-schema/schema/objectives"
	"github.com/ionworks/ionworks-schema/schema/parameter"
	"github.com/ionworks/ionworks-schema/schema/stats"
)

func TestDataFitRequiresParametersOrPriors(t *testing.T) {
	t.Parallel()

	obj := objectives.NewFitting("data.csv")

	df := New(map[string]schema.Configurer{"fit1": obj})
	require.ErrorIs(t, df.Validate(), ErrMissingParametersOrPriors)

	df.Parameters = map[string]any{"k": 1.0}
	df.Priors = []schema.Configurer{stats.Normal{Mean: 0, Std: 1}}
	require.ErrorIs(t, df.Validate(), ErrParametersAndPriors)

	df.Priors = nil
	require.NoError(t, df.Validate())

	require.ErrorIs(t, (&DataFit{Parameters: map[string]any{"k": 1.0}}).Validate(), ErrMissingObjectives)
}

func TestDataFitValidatesNestedParameters(t *testing.T) {
	t.Parallel()

	bad := parameter.New("x")
	bad.Bounds = &parameter.Bounds{Lower: 1, Upper: 0}

	df := New(map[string]schema.Configurer{"fit1": objectives.NewFitting("data.csv")})
	df.Parameters = map[string]any{"x": bad}

	err := df.Validate()
	require.ErrorIs(t, err, parameter.ErrInvalidBounds)
	require.Contains(t, err.Error(), `parameter "x"`)
}

func TestDataFitValidatesNestedObjectives(t *testing.T) {
	t.Parallel()

	df := New(map[string]schema.Configurer{"fit": objectives.NewFitting(nil)})
	df.Parameters = map[string]any{"k": 1.0}

	err := df.Validate()
	require.ErrorIs(t, err, objectives.ErrMissingData)
	require.Contains(t, err.Error(), `objective "fit"`)

	// A single objective is checked the same way.
	single := New(objectives.NewFitting(nil))
	single.Parameters = map[string]any{"k": 1.0}
	require.ErrorIs(t, single.Validate(), objectives.ErrMissingData)

	single.Objectives = objectives.NewFitting("data.csv")
	require.NoError(t, single.Validate())
}

func TestDataFitConfig(t *testing.T) {
	t.Parallel()

	obj := objectives.NewFitting("path.csv")
	obj.Options = map[string]any{"key": "value"}

	df := New(map[string]schema.Configurer{"obj1": obj})
	df.Source = "test source"
	df.Parameters = map[string]any{"x": 1.0}
	df.Multistarts = 50

	cfg := df.Config()
	require.Equal(t, "test source", cfg["source"])
	require.Equal(t, map[string]any{"x": 1.0}, cfg["parameters"])
	require.Equal(t, 50, cfg["multistarts"])
	_, hasType := cfg["type"]
	require.False(t, hasType)
	_, hasWorkers := cfg["num_workers"]
	require.False(t, hasWorkers)

	objs, ok := cfg["objectives"].(map[string]any)
	require.True(t, ok)
	nested, ok := objs["obj1"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "path.csv", nested["data"])
	require.Equal(t, map[string]any{"key": "value"}, nested["options"])

	require.Equal(t, schema.KindDataFit, df.ElementKind())
}

func TestDataFitEmptySourceIsOmitted(t *testing.T) {
	t.Parallel()

	df := New(map[string]schema.Configurer{"fit": objectives.NewFitting("d.csv")})
	df.Parameters = map[string]any{"p": 1}

	_, hasSource := df.Config()["source"]
	require.False(t, hasSource)

	df.Source = "lab notebook"
	require.Equal(t, "lab notebook", df.Config()["source"])
}

func TestDataFitWithPriors(t *testing.T) {
	t.Parallel()

	df := New(map[string]schema.Configurer{"fit": objectives.NewFitting("d.csv")})
	df.Priors = []schema.Configurer{stats.Normal{Mean: 0, Std: 1}}
	require.NoError(t, df.Validate())

	cfg := df.Config()
	require.Equal(t, []any{
		map[string]any{"mean": 0.0, "std": 1.0, "distribution": "Normal"},
	}, cfg["priors"])
}

func TestArrayDataFit(t *testing.T) {
	t.Parallel()

	adf := NewArray(map[string]schema.Configurer{
		"278.15": objectives.NewPulse("gitt_278K.csv"),
		"298.15": objectives.NewPulse("gitt_298K.csv"),
	})
	adf.Parameters = map[string]any{"Diffusivity [m2.s-1]": 1e-14}
	require.NoError(t, adf.Validate())

	cfg := adf.Config()
	objs, ok := cfg["objectives"].(map[string]any)
	require.True(t, ok)
	require.Len(t, objs, 2)
	require.Equal(t, "Pulse", objs["278.15"].(map[string]any)["type"])
	require.Equal(t, schema.KindDataFit, adf.ElementKind())
}
