package calculations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ionworks/ionworks-schema/schema"
)

func TestCalculationBase(t *testing.T) {
	t.Parallel()

	calc := &Calculation{Source: "custom method"}
	cfg := calc.Config()
	require.Equal(t, "custom method", cfg["source"])
	_, hasType := cfg["type"]
	require.False(t, hasType)

	cfg = (&Calculation{}).Config()
	require.Empty(t, cfg)
	require.Equal(t, schema.KindCalculation, calc.ElementKind())
}

func TestArrheniusDiffusivityFromMSMRData(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"Stoichiometry": []float64{0.1, 0.5, 0.9},
		"Voltage [V]":   []float64{3.0, 3.4, 3.8},
	}
	calc := ArrheniusDiffusivityFromMSMRData{Electrode: "positive", Data: data}

	cfg := calc.Config()
	require.Equal(t, "ArrheniusDiffusivityFromMSMRData", cfg["type"])
	require.Equal(t, "positive", cfg["electrode"])
	require.Equal(t, "", cfg["direction"])
	require.Equal(t, "", cfg["phase"])
	require.Equal(t, map[string]any{
		"Stoichiometry": []any{0.1, 0.5, 0.9},
		"Voltage [V]":   []any{3.0, 3.4, 3.8},
	}, cfg["data"])
	_, hasOptions := cfg["options"]
	require.False(t, hasOptions)

	calc.Direction = "lithiation"
	calc.Phase = "primary"
	calc.Options = map[string]any{"interpolator": "linear"}
	cfg = calc.Config()
	require.Equal(t, "lithiation", cfg["direction"])
	require.Equal(t, "primary", cfg["phase"])
	require.Equal(t, map[string]any{"interpolator": "linear"}, cfg["options"])
}

func TestCalculationTypeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		calc     schema.Element
		wantType string
	}{
		{calc: AreaToSquareWidthHeight{}, wantType: "AreaToSquareWidthHeight"},
		{calc: ArrheniusDiffusivityFromMSMRFunction{Electrode: "positive", VoltageLimits: []float64{3.0, 4.2}}, wantType: "ArrheniusDiffusivityFromMSMRFunction"},
		{calc: ArrheniusLogLinear{Data: "d.csv"}, wantType: "ArrheniusLogLinear"},
		{calc: AverageMSMRParameters{Electrode: "negative"}, wantType: "AverageMSMRParameters"},
		{calc: CellMass{}, wantType: "CellMass"},
		{calc: CyclableLithium{}, wantType: "CyclableLithium"},
		{calc: DensityFromVolumeAndMass{}, wantType: "DensityFromVolumeAndMass"},
		{calc: DiameterToSquareWidthHeight{}, wantType: "DiameterToSquareWidthHeight"},
		{calc: DiffusivityDataInterpolant{Electrode: "negative", Data: "d.csv"}, wantType: "DiffusivityDataInterpolant"},
		{calc: DiffusivityFromMSMRData{Electrode: "negative", Data: "d.csv"}, wantType: "DiffusivityFromMSMRData"},
		{calc: DiffusivityFromMSMRFunction{Electrode: "negative", VoltageLimits: []float64{0.0, 1.5}}, wantType: "DiffusivityFromMSMRFunction"},
		{calc: DiffusivityFromPulse{Electrode: "negative", Data: "gitt.csv"}, wantType: "DiffusivityFromPulse"},
		{calc: ElectrodeCapacity{Electrode: "positive"}, wantType: "ElectrodeCapacity"},
		{calc: ElectrodeSOH{}, wantType: "ElectrodeSOH"},
		{calc: ElectrodeSOHHalfCell{Electrode: "positive"}, wantType: "ElectrodeSOHHalfCell"},
		{calc: ElectrodeVolumeFractionFromLoading{Electrode: "positive", Method: "loading"}, wantType: "ElectrodeVolumeFractionFromLoading"},
		{calc: ElectrodeVolumeFractionFromPorosity{Electrode: "positive"}, wantType: "ElectrodeVolumeFractionFromPorosity"},
		{calc: EntropicChangeDataInterpolant{Electrode: "positive", Data: "d.csv"}, wantType: "EntropicChangeDataInterpolant"},
		{calc: EntropicChangeFromMSMRFunction{Electrode: "positive", VoltageLimits: []float64{3.0, 4.2}}, wantType: "EntropicChangeFromMSMRFunction"},
		{calc: HalfCellNominalCapacity{Electrode: "positive"}, wantType: "HalfCellNominalCapacity"},
		{calc: InitialConcentrationFromInitialStoichiometryHalfCell{Electrode: "positive"}, wantType: "InitialConcentrationFromInitialStoichiometryHalfCell"},
		{calc: InitialSOC{SOC: 100.0}, wantType: "InitialSOC"},
		{calc: InitialSOCHalfCell{Electrode: "positive", SOC: 50.0}, wantType: "InitialSOCHalfCell"},
		{calc: InitialSOCfromMaximumStoichiometry{}, wantType: "InitialSOCfromMaximumStoichiometry"},
		{calc: InitialStoichiometryFromVoltageHalfCell{Electrode: "positive"}, wantType: "InitialStoichiometryFromVoltageHalfCell"},
		{calc: InitialStoichiometryFromVoltageMSMRHalfCell{Electrode: "positive"}, wantType: "InitialStoichiometryFromVoltageMSMRHalfCell"},
		{calc: InitialVoltageFromConcentration{Electrode: "positive"}, wantType: "InitialVoltageFromConcentration"},
		{calc: JellyRollThermalDimensions{}, wantType: "JellyRollThermalDimensions"},
		{calc: LumpedHeatCapacityAndDensity{}, wantType: "LumpedHeatCapacityAndDensity"},
		{calc: MSMRElectrodeSOHHalfCell{Electrode: "positive"}, wantType: "MSMRElectrodeSOHHalfCell"},
		{calc: MSMRFullCellCapacities{Data: "d.csv"}, wantType: "MSMRFullCellCapacities"},
		{calc: MSMRFunction{Electrode: "positive"}, wantType: "MSMRFunction"},
		{calc: OCPDataInterpolant{Electrode: "positive", Data: "d.csv"}, wantType: "OCPDataInterpolant"},
		{calc: OCPDataInterpolantMSMRExtrapolation{Electrode: "positive", Data: "d.csv", VoltageLimits: []float64{3.0, 4.2}}, wantType: "OCPDataInterpolantMSMRExtrapolation"},
		{calc: OCPMSMRInterpolant{Electrode: "positive", VoltageLimits: []float64{3.0, 4.2}}, wantType: "OCPMSMRInterpolant"},
		{calc: OpenCircuitLimits{}, wantType: "OpenCircuitLimits"},
		{calc: PorosityFromElectrodeVolumeFraction{Electrode: "positive"}, wantType: "PorosityFromElectrodeVolumeFraction"},
		{calc: PouchCellThermalDimensions{}, wantType: "PouchCellThermalDimensions"},
		{calc: SlopesToKnots{BaseParameterName: "D", BreakpointValues: []float64{0, 1}, BreakpointParameterName: "SOC"}, wantType: "SlopesToKnots"},
		{calc: SlopesToKnots2D{BaseParameterName: "D"}, wantType: "SlopesToKnots2D"},
		{calc: SpecificHeatCapacity{}, wantType: "SpecificHeatCapacity"},
		{calc: StoichiometryAtMinimumSOC{Electrode: "positive"}, wantType: "StoichiometryAtMinimumSOC"},
		{calc: StoichiometryLimitsFromCapacity{}, wantType: "StoichiometryLimitsFromCapacity"},
		{calc: SurfaceAreaToVolumeRatio{Electrode: "positive"}, wantType: "SurfaceAreaToVolumeRatio"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantType, tt.calc.Config()["type"])
			require.Equal(t, schema.KindCalculation, tt.calc.ElementKind())
		})
	}
}

func TestMethodDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, "electrode capacities", CyclableLithium{}.Config()["method"])
	require.Equal(t, "electrolyte", CyclableLithium{Method: "electrolyte"}.Config()["method"])

	cfg := ElectrodeCapacity{Electrode: "negative"}.Config()
	require.Equal(t, "auto", cfg["method"])
	require.Equal(t, false, cfg["use_stoich_window"])
	_, hasPhase := cfg["phase"]
	require.False(t, hasPhase)

	require.Equal(t, "total capacity", MSMRFullCellCapacities{Data: "d.csv"}.Config()["method"])
}

func TestMSMRFunctionOmitsUnsetDirection(t *testing.T) {
	t.Parallel()

	cfg := MSMRFunction{Electrode: "negative"}.Config()
	_, hasDirection := cfg["direction"]
	require.False(t, hasDirection)

	cfg = MSMRFunction{Electrode: "negative", Direction: "delithiation", Phase: "secondary"}.Config()
	require.Equal(t, "delithiation", cfg["direction"])
	require.Equal(t, "secondary", cfg["phase"])
}

func TestSlopesToKnotsConfig(t *testing.T) {
	t.Parallel()

	cfg := SlopesToKnots{
		BaseParameterName:       "Particle diffusion time [s]",
		BreakpointValues:        []float64{0.0, 0.5, 1.0},
		BreakpointParameterName: "SOC",
	}.Config()
	require.Equal(t, schema.Config{
		"type":                      "SlopesToKnots",
		"base_parameter_name":       "Particle diffusion time [s]",
		"breakpoint_values":         []any{0.0, 0.5, 1.0},
		"breakpoint_parameter_name": "SOC",
	}, cfg)
}
