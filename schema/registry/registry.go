// Package registry resolves wire names to pipeline elements. It backs the
// CLI build path, where elements arrive as raw decoded configs rather than
// typed values.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ionworks/ionworks-schema/schema"
	"github.com/ionworks/ionworks-schema/schema/directentries"
)

var (
	// ErrUnknownElement is returned when a wire name resolves to nothing.
	ErrUnknownElement = errors.New("unknown element type")
	// ErrInvalidElement is returned when an element config breaks a
	// structural invariant of its type.
	ErrInvalidElement = errors.New("invalid element config")
)

// legacyNames maps retired wire names to their canonical replacements.
var legacyNames = map[string]string{
	"Objective":      "FittingObjective",
	"Difference":     "MLE",
	"DummyOptimizer": "PointEstimateOptimizer",
	"DummySampler":   "PointEstimateSampler",
}

// elementKinds classifies the non-calculation element wire names.
var elementKinds = map[string]schema.Kind{
	"DataFit":                  schema.KindDataFit,
	"ArrayDataFit":             schema.KindDataFit,
	"Validation":               schema.KindValidation,
	"DirectEntry":              schema.KindEntry,
	"InitialStateOfCharge":     schema.KindEntry,
	"InitialTemperature":       schema.KindEntry,
	"InitialVoltage":           schema.KindEntry,
	"PiecewiseInterpolation1D": schema.KindEntry,
	"PiecewiseInterpolation2D": schema.KindEntry,
}

// calculationNames lists the calculation wire names the executor accepts.
var calculationNames = []string{
	"AreaToSquareWidthHeight",
	"ArrheniusDiffusivityFromMSMRData",
	"ArrheniusDiffusivityFromMSMRFunction",
	"ArrheniusLogLinear",
	"AverageMSMRParameters",
	"Calculation",
	"CellMass",
	"CyclableLithium",
	"DensityFromVolumeAndMass",
	"DiameterToSquareWidthHeight",
	"DiffusivityDataInterpolant",
	"DiffusivityFromMSMRData",
	"DiffusivityFromMSMRFunction",
	"DiffusivityFromPulse",
	"ElectrodeCapacity",
	"ElectrodeSOH",
	"ElectrodeSOHHalfCell",
	"ElectrodeVolumeFractionFromLoading",
	"ElectrodeVolumeFractionFromPorosity",
	"EntropicChangeDataInterpolant",
	"EntropicChangeFromMSMRFunction",
	"HalfCellNominalCapacity",
	"InitialConcentrationFromInitialStoichiometryHalfCell",
	"InitialSOC",
	"InitialSOCHalfCell",
	"InitialSOCfromMaximumStoichiometry",
	"InitialStoichiometryFromVoltageHalfCell",
	"InitialStoichiometryFromVoltageMSMRHalfCell",
	"InitialVoltageFromConcentration",
	"JellyRollThermalDimensions",
	"LumpedHeatCapacityAndDensity",
	"MSMRElectrodeSOHHalfCell",
	"MSMRFullCellCapacities",
	"MSMRFunction",
	"OCPDataInterpolant",
	"OCPDataInterpolantMSMRExtrapolation",
	"OCPMSMRInterpolant",
	"OpenCircuitLimits",
	"PorosityFromElectrodeVolumeFraction",
	"PouchCellThermalDimensions",
	"SlopesToKnots",
	"SlopesToKnots2D",
	"SpecificHeatCapacity",
	"StoichiometryAtMinimumSOC",
	"StoichiometryLimitsFromCapacity",
	"SurfaceAreaToVolumeRatio",
}

var calculationNameSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(calculationNames))
	for _, name := range calculationNames {
		set[name] = struct{}{}
	}
	return set
}()

// Registry builds pipeline elements from wire names. It warns at most once
// per legacy name.
type Registry struct {
	log *slog.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// New returns a registry that logs legacy-name warnings to log.
func New(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{log: log, warned: map[string]struct{}{}}
}

// Resolve maps a wire name to its canonical form, warning the first time a
// legacy name is seen.
func (r *Registry) Resolve(name string) string {
	canonical, ok := legacyNames[name]
	if !ok {
		return name
	}
	r.mu.Lock()
	_, seen := r.warned[name]
	r.warned[name] = struct{}{}
	r.mu.Unlock()
	if !seen {
		r.log.Warn("legacy wire name", "name", name, "use", canonical)
	}
	return canonical
}

// Known reports whether name (after legacy resolution) is a buildable
// element wire name.
func (r *Registry) Known(name string) bool {
	name = r.Resolve(name)
	if _, ok := elementKinds[name]; ok {
		return true
	}
	if _, ok := calculationNameSet[name]; ok {
		return true
	}
	return directentries.IsFunctionName(name)
}

// Build constructs a pipeline element of the named type carrying cfg. The
// config is copied; later mutation of cfg does not affect the element.
func (r *Registry) Build(name string, cfg map[string]any) (schema.Element, error) {
	name = r.Resolve(name)

	switch name {
	case "InitialStateOfCharge", "InitialTemperature", "InitialVoltage":
		v, ok := floatValue(cfg["value"])
		if !ok {
			return nil, fmt.Errorf("%w: %s requires a numeric value", ErrInvalidElement, name)
		}
		switch name {
		case "InitialStateOfCharge":
			return directentries.InitialStateOfCharge{Value: v}, nil
		case "InitialTemperature":
			return directentries.InitialTemperature{Value: v}, nil
		default:
			return directentries.InitialVoltage{Value: v}, nil
		}
	}

	kind, ok := elementKinds[name]
	switch {
	case ok:
	case directentries.IsFunctionName(name):
		kind = schema.KindEntry
	default:
		if _, isCalc := calculationNameSet[name]; !isCalc {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
		}
		kind = schema.KindCalculation
	}

	elem := rawElement{name: name, kind: kind, cfg: make(schema.Config, len(cfg))}
	for k, v := range cfg {
		elem.cfg[k] = v
	}
	if err := elem.check(); err != nil {
		return nil, err
	}
	return elem, nil
}

// floatValue widens the numeric types yaml and json decoders produce.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// rawElement is an untyped element built from a decoded config.
type rawElement struct {
	name string
	kind schema.Kind
	cfg  schema.Config
}

func (e rawElement) ElementKind() schema.Kind { return e.kind }

func (e rawElement) Config() schema.Config {
	cfg := make(schema.Config, len(e.cfg)+1)
	for k, v := range e.cfg {
		cfg[k] = v
	}
	switch e.kind {
	case schema.KindEntry:
		if directentries.IsFunctionName(e.name) {
			cfg["name"] = e.name
		}
	case schema.KindCalculation:
		if e.name != "Calculation" {
			cfg["type"] = e.name
		}
	case schema.KindDataFit:
		// DataFit and ArrayDataFit carry no type tag.
	case schema.KindValidation:
		cfg["type"] = "Validation"
	}
	return cfg
}

// check enforces the structural invariants the typed constructors enforce.
func (e rawElement) check() error {
	switch e.name {
	case "DataFit", "ArrayDataFit":
		if _, ok := e.cfg["objectives"]; !ok {
			return fmt.Errorf("%w: %s requires objectives", ErrInvalidElement, e.name)
		}
		_, hasParams := e.cfg["parameters"]
		_, hasPriors := e.cfg["priors"]
		if hasParams == hasPriors {
			return fmt.Errorf("%w: %s requires exactly one of parameters or priors", ErrInvalidElement, e.name)
		}
	case "Validation":
		if _, ok := e.cfg["objectives"]; !ok {
			return fmt.Errorf("%w: Validation requires objectives", ErrInvalidElement)
		}
	}
	return nil
}
