package schema

import (
	"errors"
	"fmt"
)

// ErrNoElements is returned when a pipeline is validated with no elements.
var ErrNoElements = errors.New("pipeline has no elements")

// Pipeline is a named collection of elements submitted to the execution API
// as a single document. Element order is not significant; the executor
// resolves dependencies between elements by the parameters they produce.
type Pipeline struct {
	Elements    map[string]Element
	OutputFile  string
	Name        string
	Description string
}

// NewPipeline returns a pipeline over the given named elements.
func NewPipeline(elements map[string]Element) *Pipeline {
	return &Pipeline{Elements: elements}
}

// Config serializes the pipeline. Each element's config is tagged with its
// element_type so the parser can dispatch on it.
func (p *Pipeline) Config() Config {
	elements := make(map[string]any, len(p.Elements))
	for name, el := range p.Elements {
		cfg := el.Config()
		cfg["element_type"] = string(el.ElementKind())
		elements[name] = cfg
	}
	cfg := Config{"elements": elements}
	if p.OutputFile != "" {
		cfg["output_file"] = p.OutputFile
	}
	if p.Name != "" {
		cfg["name"] = p.Name
	}
	if p.Description != "" {
		cfg["description"] = p.Description
	}
	return cfg
}

// Validate checks the pipeline and every element that carries invariants.
func (p *Pipeline) Validate() error {
	if len(p.Elements) == 0 {
		return ErrNoElements
	}
	for name, el := range p.Elements {
		v, ok := el.(Validator)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("element %q: %w", name, err)
		}
	}
	return nil
}
