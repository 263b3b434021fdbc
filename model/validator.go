package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const modelsURL = "https://restbind.invalid/models.json"

// Validator checks dynamic JSON bodies against declarative schemas.
// A Validator is safe for concurrent use.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator compiles every schema in schemas.
func NewValidator(schemas map[string]*Schema) (*Validator, error) {
	defs := make(map[string]any, len(schemas))
	for name, s := range schemas {
		defs[name] = s.jsonSchema()
	}
	raw, err := json.Marshal(map[string]any{
		"$schema": draft2020,
		"$defs":   defs,
	})
	if err != nil {
		return nil, fmt.Errorf("model: encode schemas: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(modelsURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("model: add schemas: %w", err)
	}

	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	slices.Sort(names)

	v := &Validator{compiled: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		s, err := c.Compile(modelsURL + "#/$defs/" + name)
		if err != nil {
			return nil, fmt.Errorf("model: compile %s: %w", name, err)
		}
		v.compiled[name] = s
	}
	return v, nil
}

// Has reports whether a schema named name was compiled.
func (v *Validator) Has(name string) bool {
	_, ok := v.compiled[name]
	return ok
}

// Validate checks body against the named schema. body may be raw JSON
// ([]byte or json.RawMessage) or any value that encodes to JSON.
func (v *Validator) Validate(name string, body any) error {
	s, ok := v.compiled[name]
	if !ok {
		return fmt.Errorf("model: no schema named %q", name)
	}

	var raw []byte
	switch b := body.(type) {
	case json.RawMessage:
		raw = b
	case []byte:
		raw = b
	default:
		var err error
		if raw, err = json.Marshal(body); err != nil {
			return fmt.Errorf("model: encode %s body: %w", name, err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("model: %s body is not JSON: %w", name, err)
	}
	return s.Validate(doc)
}
