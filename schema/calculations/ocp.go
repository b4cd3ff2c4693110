package calculations

import "github.com/ionworks/ionworks-schema/schema"

// EntropicChangeDataInterpolant builds an entropic change interpolant from
// measured data.
type EntropicChangeDataInterpolant struct {
	Electrode string
	Data      any
	Options   map[string]any
	calculation
}

func (c EntropicChangeDataInterpolant) Config() schema.Config {
	cfg := schema.Config{"type": "EntropicChangeDataInterpolant", "electrode": c.Electrode}
	schema.Put(cfg, "data", c.Data)
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// EntropicChangeFromMSMRFunction derives the entropic change from a fitted
// MSMR function over the given voltage limits.
type EntropicChangeFromMSMRFunction struct {
	Electrode     string
	VoltageLimits any
	Options       map[string]any
	calculation
}

func (c EntropicChangeFromMSMRFunction) Config() schema.Config {
	cfg := schema.Config{"type": "EntropicChangeFromMSMRFunction", "electrode": c.Electrode}
	schema.Put(cfg, "voltage_limits", c.VoltageLimits)
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// MSMRFunction builds the open-circuit potential function from fitted MSMR
// parameters. Direction and phase are omitted when unset.
type MSMRFunction struct {
	Electrode string
	Direction string
	Phase     string
	calculation
}

func (c MSMRFunction) Config() schema.Config {
	cfg := schema.Config{"type": "MSMRFunction", "electrode": c.Electrode}
	if c.Direction != "" {
		cfg["direction"] = c.Direction
	}
	if c.Phase != "" {
		cfg["phase"] = c.Phase
	}
	return cfg
}

// OCPDataInterpolant builds an open-circuit potential interpolant directly
// from measured data.
type OCPDataInterpolant struct {
	Electrode string
	Data      any
	Options   map[string]any
	calculation
}

func (c OCPDataInterpolant) Config() schema.Config {
	cfg := schema.Config{"type": "OCPDataInterpolant", "electrode": c.Electrode}
	schema.Put(cfg, "data", c.Data)
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// OCPDataInterpolantMSMRExtrapolation builds an OCP interpolant from data
// and extrapolates beyond the measured window with a fitted MSMR function.
type OCPDataInterpolantMSMRExtrapolation struct {
	Electrode     string
	Data          any
	VoltageLimits any
	Options       map[string]any
	calculation
}

func (c OCPDataInterpolantMSMRExtrapolation) Config() schema.Config {
	cfg := schema.Config{"type": "OCPDataInterpolantMSMRExtrapolation", "electrode": c.Electrode}
	schema.Put(cfg, "data", c.Data)
	schema.Put(cfg, "voltage_limits", c.VoltageLimits)
	schema.Put(cfg, "options", c.Options)
	return cfg
}

// OCPMSMRInterpolant builds an OCP interpolant by sampling a fitted MSMR
// function over the given voltage limits.
type OCPMSMRInterpolant struct {
	Electrode     string
	VoltageLimits any
	Options       map[string]any
	calculation
}

func (c OCPMSMRInterpolant) Config() schema.Config {
	cfg := schema.Config{"type": "OCPMSMRInterpolant", "electrode": c.Electrode}
	schema.Put(cfg, "voltage_limits", c.VoltageLimits)
	schema.Put(cfg, "options", c.Options)
	return cfg
}
