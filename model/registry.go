package model

import (
	"fmt"
	"reflect"
	"slices"
)

// Registry maps model names to Go types.
//
// A Registry is populated during package initialization and is read-only after
// that. Concurrent reads are safe; Add is not safe for concurrent use.
type Registry struct {
	types map[string]reflect.Type
	names map[reflect.Type]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]reflect.Type),
		names: make(map[reflect.Type]string),
	}
}

// Add registers v under name and returns the registry for chaining. v is a
// struct value or a pointer to one. Add panics if v is not a struct or if name is
// already registered, since registration happens once at startup.
func (r *Registry) Add(name string, v any) *Registry {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("model: Add(%q): %T is not a struct", name, v))
	}
	if _, dup := r.types[name]; dup {
		panic(fmt.Sprintf("model: Add(%q): already registered", name))
	}
	r.types[name] = t
	r.names[t] = name
	return r
}

// Lookup returns the struct type registered under name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.types[name]
	return t, ok
}

// NameOf returns the name a type was registered under. Pointers are dereferenced.
func (r *Registry) NameOf(t reflect.Type) (string, bool) {
	if r == nil || t == nil {
		return "", false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name, ok := r.names[t]
	return name, ok
}

// New returns a pointer to a new zero value of the named model.
func (r *Registry) New(name string) (any, bool) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return reflect.New(t).Interface(), true
}

// Describe reflects the named model.
func (r *Registry) Describe(name string) (*Type, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("model: %q is not registered", name)
	}
	return Describe(t)
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
