package calculations

import "github.com/ionworks/ionworks-schema/schema"

// AreaToSquareWidthHeight converts an electrode area to the width and height
// of a square electrode with the same area.
type AreaToSquareWidthHeight struct {
	calculation
}

func (AreaToSquareWidthHeight) Config() schema.Config {
	return schema.Config{"type": "AreaToSquareWidthHeight"}
}

// DiameterToSquareWidthHeight converts a cell diameter to equivalent square
// electrode dimensions.
type DiameterToSquareWidthHeight struct {
	calculation
}

func (DiameterToSquareWidthHeight) Config() schema.Config {
	return schema.Config{"type": "DiameterToSquareWidthHeight"}
}

// DensityFromVolumeAndMass computes component densities from cell volume and
// mass.
type DensityFromVolumeAndMass struct {
	calculation
}

func (DensityFromVolumeAndMass) Config() schema.Config {
	return schema.Config{"type": "DensityFromVolumeAndMass"}
}

// CellMass computes the total cell mass from component masses.
type CellMass struct {
	ModelOptions map[string]any
	calculation
}

func (c CellMass) Config() schema.Config {
	cfg := schema.Config{"type": "CellMass"}
	schema.Put(cfg, "model_options", c.ModelOptions)
	return cfg
}

// ElectrodeVolumeFractionFromLoading computes the active material volume
// fraction from the electrode loading.
type ElectrodeVolumeFractionFromLoading struct {
	Electrode string
	Method    string
	calculation
}

func (c ElectrodeVolumeFractionFromLoading) Config() schema.Config {
	return schema.Config{
		"type":      "ElectrodeVolumeFractionFromLoading",
		"electrode": c.Electrode,
		"method":    c.Method,
	}
}

// ElectrodeVolumeFractionFromPorosity computes the active material volume
// fraction from the electrode porosity.
type ElectrodeVolumeFractionFromPorosity struct {
	Electrode string
	calculation
}

func (c ElectrodeVolumeFractionFromPorosity) Config() schema.Config {
	return schema.Config{
		"type":      "ElectrodeVolumeFractionFromPorosity",
		"electrode": c.Electrode,
	}
}

// PorosityFromElectrodeVolumeFraction computes porosity from the active
// material volume fraction.
type PorosityFromElectrodeVolumeFraction struct {
	Electrode string
	calculation
}

func (c PorosityFromElectrodeVolumeFraction) Config() schema.Config {
	return schema.Config{
		"type":      "PorosityFromElectrodeVolumeFraction",
		"electrode": c.Electrode,
	}
}

// SurfaceAreaToVolumeRatio computes the particle surface area to volume
// ratio for an electrode.
type SurfaceAreaToVolumeRatio struct {
	Electrode string
	calculation
}

func (c SurfaceAreaToVolumeRatio) Config() schema.Config {
	return schema.Config{
		"type":      "SurfaceAreaToVolumeRatio",
		"electrode": c.Electrode,
	}
}
