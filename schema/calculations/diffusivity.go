package calculations

import "github.com/ionworks/ionworks-schema/schema"

// ArrheniusDiffusivityFromMSMRData fits an Arrhenius temperature dependence
// to diffusivities extracted from MSMR data at multiple temperatures.
type ArrheniusDiffusivityFromMSMRData struct {
	Electrode string
	Data      any
	Direction string
	Phase     string
	Options   map[string]any
	calculation
}

func (c ArrheniusDiffusivityFromMSMRData) Config() schema.Config {
	return electrodeDataConfig("ArrheniusDiffusivityFromMSMRData", c.Electrode, c.Data, c.Direction, c.Phase, c.Options)
}

// ArrheniusDiffusivityFromMSMRFunction fits an Arrhenius temperature
// dependence to diffusivities derived from a fitted MSMR function over the
// given voltage limits.
type ArrheniusDiffusivityFromMSMRFunction struct {
	Electrode     string
	VoltageLimits any
	Direction     string
	Phase         string
	Options       map[string]any
	calculation
}

func (c ArrheniusDiffusivityFromMSMRFunction) Config() schema.Config {
	return electrodeFunctionConfig("ArrheniusDiffusivityFromMSMRFunction", c.Electrode, c.VoltageLimits, c.Direction, c.Phase, c.Options)
}

// ArrheniusLogLinear fits a log-linear Arrhenius relationship to parameter
// values measured at multiple temperatures.
type ArrheniusLogLinear struct {
	Data                 any
	ReferenceTemperature *float64
	// IncludeFunc also emits the fitted function, not just its parameters.
	IncludeFunc bool
	calculation
}

func (c ArrheniusLogLinear) Config() schema.Config {
	cfg := schema.Config{"type": "ArrheniusLogLinear", "include_func": c.IncludeFunc}
	schema.Put(cfg, "data", c.Data)
	schema.Put(cfg, "reference_temperature", c.ReferenceTemperature)
	return cfg
}

// AverageMSMRParameters averages MSMR parameters fitted separately for
// lithiation and delithiation.
type AverageMSMRParameters struct {
	Electrode string
	Options   map[string]any
	calculation
}

func (c AverageMSMRParameters) Config() schema.Config {
	cfg := schema.Config{"type": "AverageMSMRParameters", "electrode": c.Electrode}
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// DiffusivityDataInterpolant builds a stoichiometry-dependent diffusivity
// interpolant from measured data.
type DiffusivityDataInterpolant struct {
	Electrode string
	Data      any
	Direction string
	Phase     string
	Options   map[string]any
	calculation
}

func (c DiffusivityDataInterpolant) Config() schema.Config {
	return electrodeDataConfig("DiffusivityDataInterpolant", c.Electrode, c.Data, c.Direction, c.Phase, c.Options)
}

// DiffusivityFromMSMRData extracts diffusivities from MSMR data.
type DiffusivityFromMSMRData struct {
	Electrode string
	Data      any
	Direction string
	Phase     string
	Options   map[string]any
	calculation
}

func (c DiffusivityFromMSMRData) Config() schema.Config {
	return electrodeDataConfig("DiffusivityFromMSMRData", c.Electrode, c.Data, c.Direction, c.Phase, c.Options)
}

// DiffusivityFromMSMRFunction derives a diffusivity function from a fitted
// MSMR function over the given voltage limits.
type DiffusivityFromMSMRFunction struct {
	Electrode     string
	VoltageLimits any
	Direction     string
	Phase         string
	Options       map[string]any
	calculation
}

func (c DiffusivityFromMSMRFunction) Config() schema.Config {
	return electrodeFunctionConfig("DiffusivityFromMSMRFunction", c.Electrode, c.VoltageLimits, c.Direction, c.Phase, c.Options)
}

// DiffusivityFromPulse extracts diffusivities from pulse experiment data.
type DiffusivityFromPulse struct {
	Electrode string
	Data      any
	Direction string
	Phase     string
	Options   map[string]any
	calculation
}

func (c DiffusivityFromPulse) Config() schema.Config {
	return electrodeDataConfig("DiffusivityFromPulse", c.Electrode, c.Data, c.Direction, c.Phase, c.Options)
}
