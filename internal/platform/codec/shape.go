// Package codec describes the JSON object form of each persisted entity.
// A Shape lists the keys an object must carry and the type of each value;
// it is compiled once into a JSON Schema and used to reject malformed
// objects before any field is read.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrDecode is returned (wrapped) whenever a JSON document or object cannot
// be turned back into an entity.
var ErrDecode = errors.New("decode error")

// Kind is the JSON value type a field must hold.
type Kind int

const (
	KindString Kind = iota
	// KindInteger values are bounded to the 32-bit range.
	KindInteger
)

func (k Kind) schemaType() string {
	if k == KindInteger {
		return "integer"
	}
	return "string"
}

// Field is one required key of a Shape.
type Field struct {
	Key         string
	Kind        Kind
	NonNegative bool
}

// Shape is the fixed key set of one entity's JSON object.
type Shape struct {
	Name   string
	Fields []Field

	schema *gojsonschema.Schema
}

// DecodeError reports every problem found while validating one object.
type DecodeError struct {
	Shape    string
	Problems []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Shape, strings.Join(e.Problems, "; "))
}

// Unwrap lets callers match any DecodeError with errors.Is(err, ErrDecode).
func (e *DecodeError) Unwrap() error { return ErrDecode }

// MustShape compiles a shape and panics if the generated schema is invalid.
// Shapes are declared as package variables, so a failure here is a
// programming error caught at startup.
func MustShape(name string, fields ...Field) *Shape {
	s, err := NewShape(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewShape compiles the JSON Schema for the given fields.
func NewShape(name string, fields ...Field) (*Shape, error) {
	s := &Shape{Name: name, Fields: fields}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.Schema()))
	if err != nil {
		return nil, fmt.Errorf("compile %s shape: %w", name, err)
	}
	s.schema = schema
	return s, nil
}

// Schema returns the JSON Schema document for the shape. Every field is
// required; unknown keys are tolerated.
func (s *Shape) Schema() map[string]interface{} {
	props := make(map[string]interface{}, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]interface{}{"type": f.Kind.schemaType()}
		if f.Kind == KindInteger {
			prop["minimum"] = math.MinInt32
			prop["maximum"] = math.MaxInt32
			if f.NonNegative {
				prop["minimum"] = 0
			}
		}
		props[f.Key] = prop
		required = append(required, f.Key)
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// Validate checks obj against the shape. A nil error guarantees that every
// field is present with the right type, so String and Int can be used
// without further checks.
func (s *Shape) Validate(obj map[string]interface{}) error {
	if obj == nil {
		return &DecodeError{Shape: s.Name, Problems: []string{"object is null"}}
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, s.Name, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &DecodeError{Shape: s.Name, Problems: problems}
}

// String reads a string field from a validated object.
func String(obj map[string]interface{}, key string) string {
	v, _ := obj[key].(string)
	return v
}

// Int reads an integer field from a validated object. Objects produced by
// the store carry json.Number; objects built in memory carry Go ints.
func Int(obj map[string]interface{}, key string) int {
	switch v := obj[key].(type) {
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		// integral values written with an exponent or fraction, e.g. 1e2 or 12.0
		f, _ := v.Float64()
		return int(f)
	}
	return 0
}
