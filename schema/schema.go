// Package schema defines the configuration document model for fitting
// pipelines. Schema types are plain data holders that serialize to nested
// string-keyed maps; the resulting documents are consumed by the execution
// API, not run locally.
package schema

import (
	"fmt"
	"reflect"
)

// Config is the exported document shape produced by every schema type.
type Config = map[string]any

// Configurer is implemented by every schema type.
type Configurer interface {
	Config() Config
}

// Validator is implemented by schema types that carry construction
// invariants. Export and submission paths validate before serializing.
type Validator interface {
	Validate() error
}

// Kind identifies the role of a pipeline element in the exported document.
type Kind string

const (
	KindDataFit     Kind = "data_fit"
	KindValidation  Kind = "validation"
	KindEntry       Kind = "entry"
	KindCalculation Kind = "calculation"
)

// Element is a schema type that can appear as a named pipeline element.
type Element interface {
	Configurer
	ElementKind() Kind
}

// Value serializes v for inclusion in a Config. Configurers are expanded to
// their config maps, maps and slices are serialized recursively, and nil
// pointers collapse to nil. Scalars pass through unchanged.
func Value(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(Configurer); ok {
		rv := reflect.ValueOf(c)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return c.Config()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Value(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			out[fmt.Sprint(iter.Key().Interface())] = Value(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Value(rv.Index(i).Interface())
		}
		return out
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Value(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Put sets cfg[key] to the serialized value of v. Nil values (including nil
// pointers, maps and slices) are omitted so exported configs never carry
// nulls.
func Put(cfg Config, key string, v any) {
	sv := Value(v)
	if sv == nil {
		return
	}
	cfg[key] = sv
}

// ValidateEach validates v when it implements Validator, or each value of v
// when v is a map, wrapping map-entry errors with the given kind and key.
func ValidateEach(kind string, v any) error {
	if v == nil {
		return nil
	}
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil
	}
	for iter := rv.MapRange(); iter.Next(); {
		val, ok := iter.Value().Interface().(Validator)
		if !ok {
			continue
		}
		if err := val.Validate(); err != nil {
			return fmt.Errorf("%s %q: %w", kind, fmt.Sprint(iter.Key().Interface()), err)
		}
	}
	return nil
}
