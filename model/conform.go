package model

import (
	"errors"
	"fmt"
)

// Conform reports whether the Go model t can carry every property declared by s.
// Each declared property must exist on t under the same wire name, with a
// compatible kind and the same repeated-ness. Extra Go fields are allowed. All
// mismatches are joined into the returned error.
func Conform(t *Type, s *Schema) error {
	var errs []error
	for _, p := range s.Properties {
		f, ok := t.Field(p.WireName)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no field for property %q", t.Name, p.WireName))
			continue
		}
		if f.Repeated != p.Repeated {
			errs = append(errs, fmt.Errorf("%s.%s: repeated is %t, property %q has repeated %t",
				t.Name, f.Name, f.Repeated, p.WireName, p.Repeated))
			continue
		}
		if !compatible(f, p) {
			errs = append(errs, fmt.Errorf("%s.%s: kind %s cannot carry property %q of type %s",
				t.Name, f.Name, describeField(f), p.WireName, describeProperty(p)))
		}
	}
	if s.CollectionKey != "" && t.CollectionKey != "" && s.CollectionKey != t.CollectionKey {
		errs = append(errs, fmt.Errorf("%s: collection key %q, schema declares %q",
			t.Name, t.CollectionKey, s.CollectionKey))
	}
	return errors.Join(errs...)
}

func compatible(f Field, p Property) bool {
	if f.Kind == KindAny || p.Type == "any" {
		return true
	}
	if p.Map {
		return f.Kind == KindMap || f.Kind == KindObject
	}
	switch p.Type {
	case "string":
		switch p.Format {
		case "int64", "uint64", "int32", "uint32":
			// Decimal strings on the wire; Go carries them as ",string" integers.
			return f.Kind == KindString || (f.Kind == KindInteger && f.StringEncoded)
		}
		return f.Kind == KindString
	case "integer":
		return f.Kind == KindInteger
	case "number":
		return f.Kind == KindNumber || f.Kind == KindInteger
	case "boolean":
		return f.Kind == KindBoolean
	case "object":
		if f.Kind == KindMap {
			return true
		}
		if f.Kind != KindObject {
			return false
		}
		return p.Ref == "" || f.Ref == p.Ref
	}
	return false
}

func describeField(f Field) string {
	if f.Ref != "" {
		return fmt.Sprintf("%s(%s)", f.Kind, f.Ref)
	}
	if f.StringEncoded {
		return fmt.Sprintf("%s,string", f.Kind)
	}
	return string(f.Kind)
}

func describeProperty(p Property) string {
	switch {
	case p.Ref != "":
		return fmt.Sprintf("%s(%s)", p.Type, p.Ref)
	case p.Format != "":
		return fmt.Sprintf("%s(%s)", p.Type, p.Format)
	}
	return p.Type
}
