// Package ionworksschema re-exports the common entry points of the schema
// packages under their legacy top-level names.
//
// New code should import the specific packages (schema, schema/datafit,
// schema/directentries, schema/parameter, library) directly.
package ionworksschema

import (
	"github.com/ionworks/ionworks-schema/library"
	"github.com/ionworks/ionworks-schema/schema"
	"github.com/ionworks/ionworks-schema/schema/datafit"
	"github.com/ionworks/ionworks-schema/schema/directentries"
	"github.com/ionworks/ionworks-schema/schema/objectives"
	"github.com/ionworks/ionworks-schema/schema/parameter"
)

// Version is the released version of this module.
const Version = "0.14.1"

// Deprecated: use schema.Config.
type Config = schema.Config

// Deprecated: use schema.Pipeline.
type Pipeline = schema.Pipeline

// Deprecated: use datafit.DataFit.
type DataFit = datafit.DataFit

// Deprecated: use directentries.DirectEntry.
type DirectEntry = directentries.DirectEntry

// Deprecated: use parameter.Parameter.
type Parameter = parameter.Parameter

// Deprecated: use objectives.MSMRHalfCell.
type MSMRHalfCell = objectives.MSMRHalfCell

// Deprecated: use objectives.MSMRFullCell.
type MSMRFullCell = objectives.MSMRFullCell

// Deprecated: use library.Material.
type Material = library.Material

// Library is the legacy access point for the material library.
//
// Deprecated: use the library package directly.
type Library struct{}

// Deprecated: use library.Materials.
func (Library) Materials() []string {
	return library.Materials()
}

// Deprecated: use library.Get.
func (Library) GetMaterial(name string) (library.Material, error) {
	return library.Get(name)
}

// Deprecated: use schema.NewPipeline.
func NewPipeline(elements map[string]schema.Element) *schema.Pipeline {
	return schema.NewPipeline(elements)
}

// Deprecated: use library.Materials.
func Materials() []string {
	return library.Materials()
}

// Deprecated: use library.Get.
func GetMaterial(name string) (library.Material, error) {
	return library.Get(name)
}
