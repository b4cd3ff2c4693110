// Package export renders pipeline configs as the JSON documents the
// execution API accepts, and validates documents against the envelope
// schema.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/ionworks/ionworks-schema/schema"
)

// ErrInvalidDocument is returned when a document fails envelope validation.
var ErrInvalidDocument = errors.New("invalid pipeline document")

// Envelope is the schema every exported pipeline document must satisfy:
// an elements object whose members each carry a known element_type.
func Envelope() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"elements"},
		Properties: map[string]*jsonschema.Schema{
			"elements": {
				Type: "object",
				AdditionalProperties: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"element_type"},
					Properties: map[string]*jsonschema.Schema{
						"element_type": {
							Type: "string",
							Enum: []any{
								string(schema.KindDataFit),
								string(schema.KindValidation),
								string(schema.KindEntry),
								string(schema.KindCalculation),
							},
						},
					},
				},
			},
			"output_file": {Type: "string"},
			"name":        {Type: "string"},
			"description": {Type: "string"},
		},
	}
}

var resolveEnvelope = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return Envelope().Resolve(nil)
})

// Validate checks a decoded pipeline document against the envelope schema.
func Validate(doc any) error {
	resolved, err := resolveEnvelope()
	if err != nil {
		return fmt.Errorf("resolve envelope schema: %w", err)
	}
	if err := resolved.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// MarshalConfig renders an exported config as indented JSON with sorted
// keys, after checking it against the envelope schema.
func MarshalConfig(cfg schema.Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pipeline document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reparse pipeline document: %w", err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return data, nil
}

// Marshal validates a pipeline and renders its exported JSON document.
func Marshal(p *schema.Pipeline) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return MarshalConfig(p.Config())
}
