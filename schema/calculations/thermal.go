package calculations

import "github.com/ionworks/ionworks-schema/schema"

// JellyRollThermalDimensions computes thermal model dimensions for a jelly
// roll cell geometry.
type JellyRollThermalDimensions struct {
	calculation
}

func (JellyRollThermalDimensions) Config() schema.Config {
	return schema.Config{"type": "JellyRollThermalDimensions"}
}

// PouchCellThermalDimensions computes thermal model dimensions for a pouch
// cell geometry.
type PouchCellThermalDimensions struct {
	calculation
}

func (PouchCellThermalDimensions) Config() schema.Config {
	return schema.Config{"type": "PouchCellThermalDimensions"}
}

// LumpedHeatCapacityAndDensity computes lumped thermal properties from the
// cell components.
type LumpedHeatCapacityAndDensity struct {
	calculation
}

func (LumpedHeatCapacityAndDensity) Config() schema.Config {
	return schema.Config{"type": "LumpedHeatCapacityAndDensity"}
}

// SpecificHeatCapacity computes the cell's specific heat capacity.
type SpecificHeatCapacity struct {
	calculation
}

func (SpecificHeatCapacity) Config() schema.Config {
	return schema.Config{"type": "SpecificHeatCapacity"}
}
