package export

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ionworks/ionworks-schema/schema"
	"github.com/ionworks/ionworks-schema/schema/datafit"
	"github.com/ionworks/ionworks-schema/schema/directentries"
	"github.com/ionworks/ionworks-schema/schema/objectives"
)

func testPipeline(t *testing.T) *schema.Pipeline {
	t.Helper()
	return schema.NewPipeline(map[string]schema.Element{
		"soc":  directentries.InitialStateOfCharge{Value: 100},
		"temp": directentries.InitialTemperature{Value: 298.15},
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := Marshal(testPipeline(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	elements := doc["elements"].(map[string]any)
	require.Len(t, elements, 2)
	soc := elements["soc"].(map[string]any)
	require.Equal(t, "entry", soc["element_type"])
	require.Equal(t, map[string]any{"Initial SOC [%]": 100.0}, soc["values"])
}

func TestMarshalGolden(t *testing.T) {
	t.Parallel()

	p := schema.NewPipeline(map[string]schema.Element{
		"soc": directentries.InitialStateOfCharge{Value: 100},
	})
	p.Name = "initial state"

	data, err := Marshal(p)
	require.NoError(t, err)

	want := `{
  "elements": {
    "soc": {
      "element_type": "entry",
      "values": {
        "Initial SOC [%]": 100
      }
    }
  },
  "name": "initial state"
}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	t.Parallel()

	p := testPipeline(t)
	first, err := Marshal(p)
	require.NoError(t, err)
	second, err := Marshal(p)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestMarshalEmptyPipeline(t *testing.T) {
	t.Parallel()

	_, err := Marshal(schema.NewPipeline(nil))
	require.ErrorIs(t, err, schema.ErrNoElements)
}

func TestMarshalRejectsInvalidElements(t *testing.T) {
	t.Parallel()

	_, err := Marshal(schema.NewPipeline(map[string]schema.Element{
		"val": schema.NewValidation(nil),
	}))
	require.ErrorIs(t, err, schema.ErrMissingObjectives)

	fit := datafit.New(map[string]schema.Configurer{"fit": objectives.NewFitting(nil)})
	fit.Parameters = map[string]any{"k": 1.0}
	_, err = Marshal(schema.NewPipeline(map[string]schema.Element{"fit": fit}))
	require.ErrorIs(t, err, objectives.ErrMissingData)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(map[string]any{
		"elements": map[string]any{
			"ocp": map[string]any{"element_type": "calculation", "type": "MSMRFunction"},
		},
		"name": "half cell fit",
	}))

	err := Validate(map[string]any{"name": "no elements"})
	require.ErrorIs(t, err, ErrInvalidDocument)

	err = Validate(map[string]any{
		"elements": map[string]any{
			"bad": map[string]any{"element_type": "wizardry"},
		},
	})
	require.ErrorIs(t, err, ErrInvalidDocument)

	err = Validate(map[string]any{
		"elements": map[string]any{
			"untyped": map[string]any{"values": map[string]any{}},
		},
	})
	require.ErrorIs(t, err, ErrInvalidDocument)
}
