// Package library ships a read-only table of published electrode material
// parameter sets, keyed by material name.
package library

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMaterial is returned when a material name is not in the library.
var ErrUnknownMaterial = errors.New("unknown material")

// Material is one parameter set from the library. ParameterValues maps
// parameter names to their values, typically []float64 per host site.
type Material struct {
	Name            string
	Description     string
	ParameterValues map[string]any
}

// Config returns the material as a config document.
func (m Material) Config() map[string]any {
	cfg := map[string]any{
		"name":             m.Name,
		"parameter_values": m.ParameterValues,
	}
	if m.Description != "" {
		cfg["description"] = m.Description
	}
	return cfg
}

// Materials lists the library material names in sorted order.
func Materials() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up a material by name. The returned Material owns its parameter
// values; mutating them does not affect the library.
func Get(name string) (Material, error) {
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	values := make(map[string]any, len(m.ParameterValues))
	for k, v := range m.ParameterValues {
		if fs, ok := v.([]float64); ok {
			values[k] = append([]float64(nil), fs...)
			continue
		}
		values[k] = v
	}
	return Material{Name: m.Name, Description: m.Description, ParameterValues: values}, nil
}
