package model

import (
	"encoding/json"
	"testing"
)

var testSchemas = map[string]*Schema{
	"Tier": tierSchema,
	"TiersList": {
		Name: "TiersList",
		Properties: []Property{
			{WireName: "items", Type: "object", Ref: "Tier", Repeated: true},
			{WireName: "kind", Type: "string"},
		},
	},
	"Account": {
		Name: "Account",
		Properties: []Property{
			{WireName: "id", Type: "string"},
			{WireName: "premium", Type: "boolean"},
			{WireName: "subAccounts", Type: "object", Ref: "Account", Repeated: true},
			{WireName: "labels", Type: "string", Map: true},
		},
	},
}

func TestValidator(t *testing.T) {
	v, err := NewValidator(testSchemas)
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	tests := []struct {
		name    string
		model   string
		body    any
		wantErr bool
	}{
		{"raw ok", "Tier", json.RawMessage(`{"tier":"D0","region":["us"]}`), false},
		{"bytes ok", "Tier", []byte(`{"RAM":"134217728"}`), false},
		{"map ok", "Account", map[string]any{"id": "a", "subAccounts": []any{map[string]any{"premium": true}}}, false},
		{"nested list ok", "TiersList", json.RawMessage(`{"items":[{"tier":"D1"}]}`), false},
		{"unknown property ok", "Tier", json.RawMessage(`{"extra":1}`), false},
		{"map values ok", "Account", json.RawMessage(`{"labels":{"a":"b"}}`), false},
		{"wrong scalar", "Tier", json.RawMessage(`{"tier":3}`), true},
		{"scalar for repeated", "Tier", json.RawMessage(`{"region":"us"}`), true},
		{"recursive mismatch", "Account", json.RawMessage(`{"subAccounts":[{"premium":"yes"}]}`), true},
		{"nested mismatch", "TiersList", json.RawMessage(`{"items":[{"region":[1]}]}`), true},
		{"bad map value", "Account", json.RawMessage(`{"labels":{"a":1}}`), true},
		{"not json", "Tier", []byte(`{`), true},
		{"unknown model", "Nope", json.RawMessage(`{}`), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.model, tt.body)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}

	if !v.Has("Tier") || v.Has("Nope") {
		t.Error("unexpected Has result")
	}
}

func TestSchemaJSONSchema(t *testing.T) {
	doc := testSchemas["TiersList"].JSONSchema(testSchemas)
	if doc["$schema"] != draft2020 {
		t.Errorf("expected draft 2020-12, got %v", doc["$schema"])
	}
	defs, ok := doc["$defs"].(map[string]any)
	if !ok {
		t.Fatalf("expected $defs, got %v", doc)
	}
	if _, ok := defs["Tier"]; !ok {
		t.Errorf("expected Tier in $defs, got %v", defs)
	}

	self := testSchemas["Account"].JSONSchema(testSchemas)
	selfDefs, _ := self["$defs"].(map[string]any)
	if _, ok := selfDefs["Account"]; !ok {
		t.Errorf("expected recursive Account in $defs, got %v", self)
	}

	if _, err := json.Marshal(doc); err != nil {
		t.Errorf("expected document to encode, got %v", err)
	}
}

func TestJSONSchema_Reflect(t *testing.T) {
	s := JSONSchema(&Account{})
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties, got %s", raw)
	}
	for _, key := range []string{"creation_time", "id", "subAccounts"} {
		if _, ok := props[key]; !ok {
			t.Errorf("expected property %q, got %s", key, raw)
		}
	}
	if _, ok := doc["required"]; ok {
		t.Errorf("expected no required properties, got %s", raw)
	}
}
