package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

type Tier struct {
	DiskQuota int64    `json:"DiskQuota,omitempty,string"`
	RAM       int64    `json:"RAM,omitempty,string"`
	Kind      string   `json:"kind,omitempty"`
	Region    []string `json:"region,omitempty"`
	Tier      string   `json:"tier,omitempty"`
}

type TiersList struct {
	Items []*Tier `json:"items,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}

func (*TiersList) CollectionKey() string { return "items" }

type Account struct {
	CreationTime int64      `json:"creation_time,omitempty,string"`
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Premium      bool       `json:"premium,omitempty"`
	SubAccounts  []*Account `json:"subAccounts,omitempty"`
	internal     string
}

type base struct {
	Etag string `json:"etag,omitempty"`
}

type Embedding struct {
	base
	Name   string         `json:"name"`
	Labels map[string]any `json:"labels,omitempty"`
	Raw    json.RawMessage
	Skip   string `json:"-"`
}

func TestDescribe(t *testing.T) {
	typ, err := Describe(&Tier{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if typ.Name != "Tier" {
		t.Errorf("expected name Tier, got %q", typ.Name)
	}
	if typ.GoType != reflect.TypeOf(Tier{}) {
		t.Errorf("expected struct type, got %v", typ.GoType)
	}

	ram, ok := typ.Field("RAM")
	if !ok {
		t.Fatal("expected field with wire name RAM")
	}
	if ram.Name != "RAM" || ram.Kind != KindInteger || !ram.StringEncoded || !ram.Optional {
		t.Errorf("unexpected RAM field: %+v", ram)
	}
	if !ram.Overridden {
		t.Errorf("expected RAM to be overridden against default %q", DefaultWireName("RAM"))
	}

	disk, _ := typ.Field("DiskQuota")
	if !disk.Overridden {
		t.Error("expected DiskQuota to be overridden")
	}

	region, _ := typ.Field("region")
	if !region.Repeated || region.Kind != KindString {
		t.Errorf("expected repeated string region, got %+v", region)
	}

	if typ.CollectionKey != "" {
		t.Errorf("expected no collection key, got %q", typ.CollectionKey)
	}
}

func TestDescribe_Recursive(t *testing.T) {
	typ, err := Describe(reflect.TypeOf(Account{}))
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	sub, ok := typ.Field("subAccounts")
	if !ok {
		t.Fatal("expected subAccounts field")
	}
	if sub.Kind != KindObject || sub.Ref != "Account" || !sub.Repeated {
		t.Errorf("unexpected subAccounts field: %+v", sub)
	}
	if _, ok := typ.Field("internal"); ok {
		t.Error("unexported field should not be described")
	}
	overrides := typ.Overrides()
	if overrides["CreationTime"] != "creation_time" {
		t.Errorf("expected CreationTime override, got %v", overrides)
	}
	if _, ok := overrides["ID"]; ok {
		t.Error("ID -> id should not be an override")
	}
}

func TestDescribe_CollectionKey(t *testing.T) {
	typ, err := Describe(TiersList{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if typ.CollectionKey != "items" {
		t.Errorf("expected collection key items, got %q", typ.CollectionKey)
	}
	items, _ := typ.Field("items")
	if items.Ref != "Tier" {
		t.Errorf("expected items to reference Tier, got %q", items.Ref)
	}
}

func TestDescribe_Embedded(t *testing.T) {
	typ, err := Describe(Embedding{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	var wire []string
	for _, f := range typ.Fields {
		wire = append(wire, f.WireName)
	}
	expected := []string{"etag", "name", "labels", "Raw"}
	if !reflect.DeepEqual(wire, expected) {
		t.Errorf("expected fields %v, got %v", expected, wire)
	}
	labels, _ := typ.Field("labels")
	if labels.Kind != KindMap {
		t.Errorf("expected map kind, got %s", labels.Kind)
	}
	raw, _ := typ.Field("Raw")
	if raw.Kind != KindAny {
		t.Errorf("expected any kind for RawMessage, got %s", raw.Kind)
	}
}

func TestDescribe_Errors(t *testing.T) {
	if _, err := Describe(nil); err == nil {
		t.Error("expected error for nil")
	}
	if _, err := Describe(42); err == nil {
		t.Error("expected error for non-struct")
	}
}

func TestDefaultWireName(t *testing.T) {
	tests := map[string]string{
		"Name":      "name",
		"PublicKey": "publicKey",
		"ID":        "id",
		"RAM":       "ram",
		"URLPath":   "urlPath",
		"name":      "name",
	}
	for in, expected := range tests {
		if got := DefaultWireName(in); got != expected {
			t.Errorf("DefaultWireName(%q): expected %q, got %q", in, expected, got)
		}
	}
}

func TestRoundTrip_NestedAndOverridden(t *testing.T) {
	in := &Account{
		CreationTime: 1400000000,
		ID:           "pub-1",
		Name:         "parent",
		SubAccounts: []*Account{
			{ID: "pub-2", Name: "child", Premium: true},
		},
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if wire["creation_time"] != "1400000000" {
		t.Errorf("expected creation_time on the wire, got %v", wire)
	}
	if _, ok := wire["creationTime"]; ok {
		t.Error("default wire name should not be emitted")
	}

	var out Account
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(in, &out) {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}
