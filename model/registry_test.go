package model

import (
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry().
		Add("Tier", Tier{}).
		Add("TiersList", &TiersList{})

	typ, ok := r.Lookup("TiersList")
	if !ok || typ != reflect.TypeOf(TiersList{}) {
		t.Errorf("expected TiersList struct type, got %v", typ)
	}

	name, ok := r.NameOf(reflect.TypeOf(&Tier{}))
	if !ok || name != "Tier" {
		t.Errorf("expected Tier, got %q", name)
	}

	v, ok := r.New("Tier")
	if !ok {
		t.Fatal("expected New to succeed")
	}
	if _, isTier := v.(*Tier); !isTier {
		t.Errorf("expected *Tier, got %T", v)
	}

	if _, ok := r.New("Missing"); ok {
		t.Error("expected New to fail for unknown model")
	}

	desc, err := r.Describe("TiersList")
	if err != nil || desc.CollectionKey != "items" {
		t.Errorf("expected described TiersList, got %+v, %v", desc, err)
	}

	names := r.Names()
	if !reflect.DeepEqual(names, []string{"Tier", "TiersList"}) {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestRegistry_Nil(t *testing.T) {
	var r *Registry
	if _, ok := r.Lookup("x"); ok {
		t.Error("nil registry should not find anything")
	}
	if r.Names() != nil {
		t.Error("nil registry should have no names")
	}
}

func TestRegistry_AddPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Registry)
	}{
		{"duplicate", func(r *Registry) { r.Add("Tier", Tier{}).Add("Tier", Tier{}) }},
		{"not a struct", func(r *Registry) { r.Add("Int", 1) }},
		{"nil", func(r *Registry) { r.Add("Nil", nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewRegistry())
		})
	}
}
