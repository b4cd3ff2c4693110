package calculations

import "github.com/ionworks/ionworks-schema/schema"

// CyclableLithium computes the total cyclable lithium in the cell. The
// default method sums electrode capacities.
type CyclableLithium struct {
	// Method is "electrode capacities" (default) or "electrolyte".
	Method  string
	Options map[string]any
	calculation
}

func (c CyclableLithium) Config() schema.Config {
	method := c.Method
	if method == "" {
		method = "electrode capacities"
	}
	cfg := schema.Config{"type": "CyclableLithium", "method": method}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// ElectrodeCapacity computes the capacity of one electrode.
type ElectrodeCapacity struct {
	Electrode string
	// UseStoichWindow restricts the capacity to the accessible stoichiometry
	// window.
	UseStoichWindow bool
	// Method is "auto" (default), "theoretical" or "measured".
	Method string
	Phase  string
	calculation
}

func (c ElectrodeCapacity) Config() schema.Config {
	method := c.Method
	if method == "" {
		method = "auto"
	}
	cfg := schema.Config{
		"type":              "ElectrodeCapacity",
		"electrode":         c.Electrode,
		"use_stoich_window": c.UseStoichWindow,
		"method":            method,
	}
	if c.Phase != "" {
		cfg["phase"] = c.Phase
	}
	return cfg
}

// ElectrodeSOH solves the full-cell electrode state-of-health model for
// stoichiometry limits and capacities.
type ElectrodeSOH struct {
	Options map[string]any
	calculation
}

func (c ElectrodeSOH) Config() schema.Config {
	cfg := schema.Config{"type": "ElectrodeSOH"}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// ElectrodeSOHHalfCell solves the half-cell electrode state-of-health model
// for one electrode.
type ElectrodeSOHHalfCell struct {
	Electrode string
	Options   map[string]any
	calculation
}

func (c ElectrodeSOHHalfCell) Config() schema.Config {
	cfg := schema.Config{"type": "ElectrodeSOHHalfCell", "electrode": c.Electrode}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// MSMRElectrodeSOHHalfCell solves the half-cell electrode state-of-health
// model using the MSMR formulation.
type MSMRElectrodeSOHHalfCell struct {
	Electrode string
	calculation
}

func (c MSMRElectrodeSOHHalfCell) Config() schema.Config {
	return schema.Config{"type": "MSMRElectrodeSOHHalfCell", "electrode": c.Electrode}
}

// MSMRFullCellCapacities computes electrode capacities from fitted full-cell
// MSMR parameters.
type MSMRFullCellCapacities struct {
	Data any
	// Method is "total capacity" (default) or "electrode capacities".
	Method string
	calculation
}

func (c MSMRFullCellCapacities) Config() schema.Config {
	method := c.Method
	if method == "" {
		method = "total capacity"
	}
	cfg := schema.Config{"type": "MSMRFullCellCapacities", "method": method}
	schema.Put(cfg, "data", c.Data)
	return cfg
}

// HalfCellNominalCapacity computes the nominal capacity of a half cell.
type HalfCellNominalCapacity struct {
	Electrode string
	calculation
}

func (c HalfCellNominalCapacity) Config() schema.Config {
	return schema.Config{"type": "HalfCellNominalCapacity", "electrode": c.Electrode}
}

// InitialConcentrationFromInitialStoichiometryHalfCell converts an initial
// stoichiometry to an initial concentration for a half cell.
type InitialConcentrationFromInitialStoichiometryHalfCell struct {
	Electrode string
	Options   map[string]any
	calculation
}

func (c InitialConcentrationFromInitialStoichiometryHalfCell) Config() schema.Config {
	cfg := schema.Config{
		"type":      "InitialConcentrationFromInitialStoichiometryHalfCell",
		"electrode": c.Electrode,
	}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// InitialSOC sets the initial state of charge by solving for consistent
// electrode stoichiometries.
type InitialSOC struct {
	SOC any
	calculation
}

func (c InitialSOC) Config() schema.Config {
	cfg := schema.Config{"type": "InitialSOC"}
	schema.Put(cfg, "soc", c.SOC)
	return cfg
}

// InitialSOCHalfCell sets the initial state of charge for a half cell.
type InitialSOCHalfCell struct {
	Electrode string
	SOC       any
	Options   map[string]any
	calculation
}

func (c InitialSOCHalfCell) Config() schema.Config {
	cfg := schema.Config{"type": "InitialSOCHalfCell", "electrode": c.Electrode}
	schema.Put(cfg, "soc", c.SOC)
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// InitialSOCfromMaximumStoichiometry computes the initial state of charge
// from the maximum stoichiometry.
type InitialSOCfromMaximumStoichiometry struct {
	Options map[string]any
	calculation
}

func (c InitialSOCfromMaximumStoichiometry) Config() schema.Config {
	cfg := schema.Config{"type": "InitialSOCfromMaximumStoichiometry"}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// InitialStoichiometryFromVoltageHalfCell computes the initial stoichiometry
// from the initial voltage of a half cell.
type InitialStoichiometryFromVoltageHalfCell struct {
	Electrode string
	Options   map[string]any
	calculation
}

func (c InitialStoichiometryFromVoltageHalfCell) Config() schema.Config {
	cfg := schema.Config{
		"type":      "InitialStoichiometryFromVoltageHalfCell",
		"electrode": c.Electrode,
	}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// InitialStoichiometryFromVoltageMSMRHalfCell computes the initial
// stoichiometry from the initial voltage using the MSMR formulation.
type InitialStoichiometryFromVoltageMSMRHalfCell struct {
	Electrode string
	calculation
}

func (c InitialStoichiometryFromVoltageMSMRHalfCell) Config() schema.Config {
	return schema.Config{
		"type":      "InitialStoichiometryFromVoltageMSMRHalfCell",
		"electrode": c.Electrode,
	}
}

// InitialVoltageFromConcentration computes the initial voltage from the
// initial concentration of an electrode.
type InitialVoltageFromConcentration struct {
	Electrode string
	calculation
}

func (c InitialVoltageFromConcentration) Config() schema.Config {
	return schema.Config{"type": "InitialVoltageFromConcentration", "electrode": c.Electrode}
}

// OpenCircuitLimits computes the voltage limits reachable at open circuit.
type OpenCircuitLimits struct {
	calculation
}

func (OpenCircuitLimits) Config() schema.Config {
	return schema.Config{"type": "OpenCircuitLimits"}
}

// StoichiometryAtMinimumSOC computes the electrode stoichiometry at the
// minimum state of charge.
type StoichiometryAtMinimumSOC struct {
	Electrode string
	calculation
}

func (c StoichiometryAtMinimumSOC) Config() schema.Config {
	return schema.Config{"type": "StoichiometryAtMinimumSOC", "electrode": c.Electrode}
}

// StoichiometryLimitsFromCapacity computes stoichiometry limits from the
// measured capacity.
type StoichiometryLimitsFromCapacity struct {
	Options map[string]any
	calculation
}

func (c StoichiometryLimitsFromCapacity) Config() schema.Config {
	cfg := schema.Config{"type": "StoichiometryLimitsFromCapacity"}
	schema.Put(cfg, "options", c.Options)
	return cfg
}
