package directentries

import "github.com/ionworks/ionworks-schema/schema"

// Function-style entries invoke a named parameter-generating function on the
// executor. They serialize to {"name": <function>, kwargs...}; empty-string
// kwargs are dropped so configs stay minimal, numeric zeros are kept.

func functionConfig(name string) schema.Config {
	return schema.Config{"name": name}
}

func putNonEmpty(cfg schema.Config, key, value string) {
	if value != "" {
		cfg[key] = value
	}
}

// ArrheniusButlerVolmerExchangeCurrentDensity provides an Arrhenius
// Butler-Volmer exchange current density for an electrode.
type ArrheniusButlerVolmerExchangeCurrentDensity struct {
	Electrode string
	Direction string
	Phase     string
	entry
}

func (e ArrheniusButlerVolmerExchangeCurrentDensity) Config() schema.Config {
	cfg := functionConfig("arrhenius_butler_volmer_exchange_current_density")
	cfg["electrode"] = e.Electrode
	putNonEmpty(cfg, "direction", e.Direction)
	putNonEmpty(cfg, "phase", e.Phase)
	return cfg
}

// ArrheniusParticleDiffusivity provides an Arrhenius particle diffusivity
// for an electrode.
type ArrheniusParticleDiffusivity struct {
	Electrode string
	Direction string
	Phase     string
	entry
}

func (e ArrheniusParticleDiffusivity) Config() schema.Config {
	cfg := functionConfig("arrhenius_particle_diffusivity")
	cfg["electrode"] = e.Electrode
	putNonEmpty(cfg, "direction", e.Direction)
	putNonEmpty(cfg, "phase", e.Phase)
	return cfg
}

// AverageOCP provides the average of lithiation and delithiation OCPs for an
// electrode.
type AverageOCP struct {
	Electrode string
	Phase     string
	entry
}

func (e AverageOCP) Config() schema.Config {
	cfg := functionConfig("average_ocp")
	cfg["electrode"] = e.Electrode
	putNonEmpty(cfg, "phase", e.Phase)
	return cfg
}

// ConstantElectrolyte provides constant electrolyte properties at the given
// concentration.
type ConstantElectrolyte struct {
	CE float64
	entry
}

func (e ConstantElectrolyte) Config() schema.Config {
	cfg := functionConfig("constant_electrolyte")
	cfg["c_e"] = e.CE
	return cfg
}

// NymanElectrolyte provides Nyman et al. electrolyte properties at the given
// concentration.
type NymanElectrolyte struct {
	CE float64
	entry
}

func (e NymanElectrolyte) Config() schema.Config {
	cfg := functionConfig("nyman_electrolyte")
	cfg["c_e"] = e.CE
	return cfg
}

// ArrheniusElectrolyteDiffusivity provides an Arrhenius electrolyte
// diffusivity.
type ArrheniusElectrolyteDiffusivity struct {
	entry
}

func (ArrheniusElectrolyteDiffusivity) Config() schema.Config {
	return functionConfig("arrhenius_electrolyte_diffusivity")
}

// ArrheniusElectrolyteConductivity provides an Arrhenius electrolyte
// conductivity.
type ArrheniusElectrolyteConductivity struct {
	entry
}

func (ArrheniusElectrolyteConductivity) Config() schema.Config {
	return functionConfig("arrhenius_electrolyte_conductivity")
}

// LandesfeindElectrolyte provides Landesfeind and Gasteiger electrolyte
// properties for the given system, e.g. "EC:DMC (1:1)" or "EC:EMC (3:7)".
type LandesfeindElectrolyte struct {
	CE     float64
	System string
	entry
}

func (e LandesfeindElectrolyte) Config() schema.Config {
	cfg := functionConfig("landesfeind_electrolyte")
	cfg["c_e"] = e.CE
	cfg["system"] = e.System
	return cfg
}

// Temperatures sets ambient, initial and reference temperatures. The zero
// value means 298.15 K.
type Temperatures struct {
	T float64
	entry
}

func (e Temperatures) Config() schema.Config {
	cfg := functionConfig("temperatures")
	t := e.T
	if t == 0 {
		t = 298.15
	}
	cfg["T"] = t
	return cfg
}

// ZeroEntropicChange sets the entropic change of both electrodes to zero.
type ZeroEntropicChange struct {
	entry
}

func (ZeroEntropicChange) Config() schema.Config {
	return functionConfig("zero_entropic_change")
}

// ZeroActivationEnergy sets all activation energies to zero.
type ZeroActivationEnergy struct {
	entry
}

func (ZeroActivationEnergy) Config() schema.Config {
	return functionConfig("zero_activation_energy")
}

// FromJSON loads parameter values from a JSON file on the executor.
type FromJSON struct {
	FilePath string
	entry
}

func (e FromJSON) Config() schema.Config {
	cfg := functionConfig("from_json")
	cfg["file_path"] = e.FilePath
	return cfg
}

// StandardDefaults provides the standard full-cell default parameter set.
type StandardDefaults struct {
	entry
}

func (StandardDefaults) Config() schema.Config {
	return functionConfig("standard_defaults")
}

// OneCm2Cell provides geometry for a one square centimetre reference cell.
type OneCm2Cell struct {
	entry
}

func (OneCm2Cell) Config() schema.Config {
	return functionConfig("one_cm2_cell")
}

// Bruggeman sets Bruggeman transport exponents. The electrode exponent
// defaults to 0 and the electrolyte exponent to 1.5; both are always
// exported, including zeros.
type Bruggeman struct {
	Electrode   float64
	Electrolyte float64
	entry
}

// NewBruggeman returns a Bruggeman entry with the default exponents.
func NewBruggeman() Bruggeman {
	return Bruggeman{Electrode: 0, Electrolyte: 1.5}
}

func (e Bruggeman) Config() schema.Config {
	cfg := functionConfig("bruggeman")
	cfg["electrode"] = e.Electrode
	cfg["electrolyte"] = e.Electrolyte
	return cfg
}

// SPMDefaults provides defaults for the single particle model.
type SPMDefaults struct {
	entry
}

func (SPMDefaults) Config() schema.Config {
	return functionConfig("spm_defaults")
}

// LithiumMetalAnode provides parameters for a lithium metal anode.
type LithiumMetalAnode struct {
	entry
}

func (LithiumMetalAnode) Config() schema.Config {
	return functionConfig("lithium_metal_anode")
}

// SEIDefaults provides default SEI growth parameters.
type SEIDefaults struct {
	entry
}

func (SEIDefaults) Config() schema.Config {
	return functionConfig("sei_defaults")
}

// LiPlatingDefaults provides default lithium plating parameters.
type LiPlatingDefaults struct {
	entry
}

func (LiPlatingDefaults) Config() schema.Config {
	return functionConfig("li_plating_defaults")
}

// MechanicalDegradationDefaults provides default mechanical degradation
// parameters for an electrode.
type MechanicalDegradationDefaults struct {
	Electrode string
	entry
}

func (e MechanicalDegradationDefaults) Config() schema.Config {
	cfg := functionConfig("mechanical_degradation_defaults")
	cfg["electrode"] = e.Electrode
	return cfg
}
