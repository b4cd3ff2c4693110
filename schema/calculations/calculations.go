// Package calculations defines pipeline elements that derive new parameters
// from existing ones through algebraic or numerical methods: geometric
// conversions, stoichiometry windows, diffusivities, open-circuit potential
// interpolants and thermal lumping.
package calculations

import "github.com/ionworks/ionworks-schema/schema"

// calculation marks a type as a calculation pipeline element.
type calculation struct{}

func (calculation) ElementKind() schema.Kind { return schema.KindCalculation }

// electrodeDataConfig is the config shape shared by the calculations that
// operate on measured data for one electrode. Direction and phase default to
// "" and are always emitted; the executor treats "" as "both".
func electrodeDataConfig(typ, electrode string, data any, direction, phase string, options map[string]any) schema.Config {
	cfg := schema.Config{
		"type":      typ,
		"electrode": electrode,
		"direction": direction,
		"phase":     phase,
	}
	schema.Put(cfg, "data", data)
	schema.Put(cfg, "options", options)
	return cfg
}

func electrodeFunctionConfig(typ, electrode string, voltageLimits any, direction, phase string, options map[string]any) schema.Config {
	cfg := schema.Config{
		"type":      typ,
		"electrode": electrode,
		"direction": direction,
		"phase":     phase,
	}
	schema.Put(cfg, "voltage_limits", voltageLimits)
	schema.Put(cfg, "options", options)
	return cfg
}

// Calculation is the generic calculation element: a reference to a method
// the executor already knows, identified only by its source description.
// Unlike every other calculation it carries no type tag.
type Calculation struct {
	Source string
	calculation
}

func (c *Calculation) Config() schema.Config {
	cfg := schema.Config{}
	if c.Source != "" {
		cfg["source"] = c.Source
	}
	return cfg
}
