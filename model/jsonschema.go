package model

import (
	"github.com/invopop/jsonschema"
)

var reflector = &jsonschema.Reflector{
	// Google-style models are all-optional on the wire.
	RequiredFromJSONSchemaTags: true,
	AllowAdditionalProperties:  true,
	ExpandedStruct:             true,
}

// JSONSchema reflects a Go model into a JSON Schema document. Nested models are
// emitted under $defs.
func JSONSchema(v any) *jsonschema.Schema {
	return reflector.Reflect(v)
}

const draft2020 = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema renders s as a JSON Schema document. Schemas referenced from s,
// directly or transitively, are looked up in all and emitted under $defs.
// Unknown references are left as open objects.
func (s *Schema) JSONSchema(all map[string]*Schema) map[string]any {
	doc := s.jsonSchema()
	doc["$schema"] = draft2020

	defs := map[string]any{}
	queue := s.Refs()
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, done := defs[name]; done {
			continue
		}
		ref, ok := all[name]
		if !ok {
			defs[name] = map[string]any{"type": "object"}
			continue
		}
		defs[name] = ref.jsonSchema()
		queue = append(queue, ref.Refs()...)
	}
	if len(defs) > 0 {
		doc["$defs"] = defs
	}
	return doc
}

// jsonSchema renders s without $schema or $defs. References point at
// #/$defs/<name>.
func (s *Schema) jsonSchema() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		props[p.WireName] = p.jsonSchema()
	}
	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	return out
}

func (p Property) jsonSchema() map[string]any {
	var item map[string]any
	switch {
	case p.Ref != "":
		item = map[string]any{"$ref": "#/$defs/" + p.Ref}
	case p.Type == "any" || p.Type == "":
		item = map[string]any{}
	default:
		item = map[string]any{"type": p.Type}
		if p.Format == "date-time" || p.Format == "date" {
			item["format"] = p.Format
		}
	}
	if p.Map {
		item = map[string]any{"type": "object", "additionalProperties": item}
	}
	if p.Repeated {
		item = map[string]any{"type": "array", "items": item}
	}
	if p.Description != "" {
		item["description"] = p.Description
	}
	return item
}
