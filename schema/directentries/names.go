package directentries

// FunctionNames lists the parameter-generating functions the executor
// accepts in {"name": <function>} entry configs. Names not in this list are
// rejected at build time.
var FunctionNames = []string{
	"arrhenius_butler_volmer_exchange_current_density",
	"arrhenius_electrolyte_conductivity",
	"arrhenius_electrolyte_diffusivity",
	"arrhenius_particle_diffusivity",
	"average_ocp",
	"bruggeman",
	"constant_electrolyte",
	"from_json",
	"landesfeind_electrolyte",
	"li_plating_defaults",
	"lithium_metal_anode",
	"mechanical_degradation_defaults",
	"nyman_electrolyte",
	"one_cm2_cell",
	"sei_defaults",
	"spm_defaults",
	"standard_defaults",
	"temperatures",
	"zero_activation_energy",
	"zero_entropic_change",
}

var functionNameSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(FunctionNames))
	for _, name := range FunctionNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsFunctionName reports whether name is a known entry function.
func IsFunctionName(name string) bool {
	_, ok := functionNameSet[name]
	return ok
}
