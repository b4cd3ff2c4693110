package objectives

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ionworks/ionworks-schema/schema"
)

func TestBaseObjectiveConfig(t *testing.T) {
	t.Parallel()

	b := &Base{Options: map[string]any{"model": "SPM"}}
	cfg := b.Config()
	require.Equal(t, "BaseObjective", cfg["type"])
	require.Equal(t, map[string]any{"model": "SPM"}, cfg["options"])
	_, hasData := cfg["data"]
	require.False(t, hasData)
}

func TestFittingObjectiveDataKey(t *testing.T) {
	t.Parallel()

	obj := NewFitting("path/to/data.csv")
	cfg := obj.Config()
	require.Equal(t, "FittingObjective", cfg["type"])
	require.Equal(t, "path/to/data.csv", cfg["data"])
	_, hasDataInput := cfg["data_input"]
	require.False(t, hasDataInput)
}

func TestFittingObjectiveValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, NewFitting(nil).Validate(), ErrMissingData)
	require.NoError(t, NewFitting("data.csv").Validate())
}

func TestObjectiveTypeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		obj      schema.Configurer
		wantType string
	}{
		{obj: NewFitting("d.csv"), wantType: "FittingObjective"},
		{obj: NewSimulation("d.csv"), wantType: "SimulationObjective"},
		{obj: NewCalendarAgeing("d.csv"), wantType: "CalendarAgeing"},
		{obj: NewCurrentDriven("d.csv"), wantType: "CurrentDriven"},
		{obj: NewCycleAgeing("d.csv"), wantType: "CycleAgeing"},
		{obj: NewEIS("d.csv"), wantType: "EIS"},
		{obj: NewElectrodeBalancing("d.csv"), wantType: "ElectrodeBalancing"},
		{obj: NewElectrodeBalancingHalfCell("negative", "d.csv"), wantType: "ElectrodeBalancingHalfCell"},
		{obj: NewMSMRFullCell("d.csv"), wantType: "MSMRFullCell"},
		{obj: NewMSMRHalfCell("d.csv"), wantType: "MSMRHalfCell"},
		{obj: NewOCPHalfCell("positive", "d.csv"), wantType: "OCPHalfCell"},
		{obj: NewPulse("d.csv"), wantType: "Pulse"},
		{obj: NewResistance("d.csv"), wantType: "Resistance"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			t.Parallel()
			cfg := tt.obj.Config()
			require.Equal(t, tt.wantType, cfg["type"])
			require.Equal(t, "d.csv", cfg["data"])
		})
	}
}

func TestHalfCellObjectivesRequireElectrode(t *testing.T) {
	t.Parallel()

	obj := NewOCPHalfCell("negative", "d.csv")
	require.NoError(t, obj.Validate())
	require.Equal(t, "negative", obj.Config()["electrode"])

	obj.Electrode = ""
	require.ErrorIs(t, obj.Validate(), ErrMissingElectrode)

	bal := NewElectrodeBalancingHalfCell("", "d.csv")
	require.ErrorIs(t, bal.Validate(), ErrMissingElectrode)
}

func TestObjectiveWithOptionsAndCost(t *testing.T) {
	t.Parallel()

	obj := NewMSMRHalfCell(map[string]any{"data": "ocp.csv"})
	obj.Options = map[string]any{"dUdQ cutoff": 50, "model": map[string]any{"reactions": 4}}
	obj.CustomParameters = map[string]any{"Ambient temperature [K]": 298.15}

	cfg := obj.Config()
	require.Equal(t, map[string]any{"data": "ocp.csv"}, cfg["data"])
	require.Equal(t, map[string]any{
		"dUdQ cutoff": 50,
		"model":       map[string]any{"reactions": 4},
	}, cfg["options"])
	require.Equal(t, map[string]any{"Ambient temperature [K]": 298.15}, cfg["custom_parameters"])
}

func TestDesignObjective(t *testing.T) {
	t.Parallel()

	d := NewDesign(map[string]any{"maximize energy": map[string]any{"metric": "energy"}})
	require.NoError(t, d.Validate())

	cfg := d.Config()
	require.Equal(t, "DesignObjective", cfg["type"])
	require.Equal(t, true, cfg["validate_against_experiment_steps"])
	require.Equal(t, map[string]any{
		"maximize energy": map[string]any{"metric": "energy"},
	}, cfg["actions"])

	d.ValidateAgainstExperimentSteps = false
	d.OutputVariablesFull = []string{"Terminal voltage [V]"}
	cfg = d.Config()
	require.Equal(t, false, cfg["validate_against_experiment_steps"])
	require.Equal(t, []any{"Terminal voltage [V]"}, cfg["output_variables_full"])

	require.ErrorIs(t, NewDesign(nil).Validate(), ErrMissingActions)
}
