package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	cfg  Config
	kind Kind
	err  error
}

func (f *fakeElement) Config() Config {
	cfg := Config{}
	for k, v := range f.cfg {
		cfg[k] = v
	}
	return cfg
}

func (f *fakeElement) ElementKind() Kind { return f.kind }

func (f *fakeElement) Validate() error { return f.err }

func TestPipelineConfig(t *testing.T) {
	t.Parallel()

	p := NewPipeline(map[string]Element{
		"ocp": &fakeElement{cfg: Config{"values": map[string]any{"x": 1.0}}, kind: KindEntry},
		"fit": &fakeElement{cfg: Config{"objectives": map[string]any{}}, kind: KindDataFit},
	})
	p.Name = "half cell fit"
	p.OutputFile = "out.json"

	cfg := p.Config()
	require.Equal(t, "half cell fit", cfg["name"])
	require.Equal(t, "out.json", cfg["output_file"])
	_, hasDescription := cfg["description"]
	require.False(t, hasDescription)

	elements, ok := cfg["elements"].(map[string]any)
	require.True(t, ok)
	require.Len(t, elements, 2)
	require.Equal(t, "entry", elements["ocp"].(map[string]any)["element_type"])
	require.Equal(t, "data_fit", elements["fit"].(map[string]any)["element_type"])
}

func TestPipelineValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, NewPipeline(nil).Validate(), ErrNoElements)

	bad := errors.New("bad element")
	p := NewPipeline(map[string]Element{
		"ok":     &fakeElement{kind: KindCalculation},
		"broken": &fakeElement{kind: KindCalculation, err: bad},
	})
	err := p.Validate()
	require.ErrorIs(t, err, bad)
	require.Contains(t, err.Error(), `element "broken"`)

	require.NoError(t, NewPipeline(map[string]Element{
		"ok": &fakeElement{kind: KindCalculation},
	}).Validate())
}

type fakeObjective struct {
	cfg Config
	err error
}

func (f *fakeObjective) Config() Config  { return f.cfg }
func (f *fakeObjective) Validate() error { return f.err }

func TestValidationValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, NewValidation(nil).Validate(), ErrMissingObjectives)

	bad := errors.New("bad objective")
	v := NewValidation(map[string]any{
		"discharge": &fakeObjective{err: bad},
	})
	err := v.Validate()
	require.ErrorIs(t, err, bad)
	require.Contains(t, err.Error(), `objective "discharge"`)

	require.NoError(t, NewValidation(&fakeObjective{}).Validate())
	require.ErrorIs(t, NewValidation(&fakeObjective{err: bad}).Validate(), bad)

	// An invalid validation fails the whole pipeline.
	p := NewPipeline(map[string]Element{"val": NewValidation(nil)})
	require.ErrorIs(t, p.Validate(), ErrMissingObjectives)
}

func TestValidationConfig(t *testing.T) {
	t.Parallel()

	v := NewValidation(nil)
	cfg := v.Config()
	require.Equal(t, "Validation", cfg["type"])
	require.Equal(t, map[string]any{}, cfg["objectives"])
	_, hasStats := cfg["summary_stats"]
	require.False(t, hasStats)

	v = NewValidation(map[string]any{
		"discharge": &fakeConfigurer{cfg: Config{"type": "CurrentDriven"}},
	})
	v.SummaryStats = []any{&fakeConfigurer{cfg: Config{"type": "RMSE"}}}
	cfg = v.Config()
	require.Equal(t, map[string]any{
		"discharge": map[string]any{"type": "CurrentDriven"},
	}, cfg["objectives"])
	require.Equal(t, []any{map[string]any{"type": "RMSE"}}, cfg["summary_stats"])
	require.Equal(t, KindValidation, v.ElementKind())
}
