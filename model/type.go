// Package model describes the Go types that mirror wire JSON objects.
//
// Model types are ordinary structs. The json struct tag carries the wire name, so
// encoding/json consults the same override table in both directions. This package
// reflects those structs into descriptors, keeps a name-indexed registry of them,
// and checks them against the declarative schemas loaded from API documents.
package model

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Kind is the wire shape of a field.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindMap     Kind = "map"
	KindAny     Kind = "any"
)

// Collection is implemented by list-shaped models. CollectionKey names the wire
// field that holds the repeated payload.
type Collection interface {
	CollectionKey() string
}

// Type describes a Go model type.
type Type struct {
	// Name is the Go type name.
	Name string

	// GoType is the struct type (never a pointer).
	GoType reflect.Type

	// Fields in declaration order, embedded structs flattened.
	Fields []Field

	// CollectionKey is the wire name of the repeated payload, or empty.
	CollectionKey string
}

// Field describes a single model field.
type Field struct {
	// Name is the Go field name.
	Name string

	// WireName is the JSON key.
	WireName string

	// Kind is the wire shape of the field, or of its elements when Repeated.
	Kind Kind

	// Ref names the nested model type when Kind is KindObject, or the value
	// type of a KindMap field holding models.
	Ref string

	// Repeated is true for slices.
	Repeated bool

	// Optional is true when json:",omitempty" or json:",omitzero" is set.
	Optional bool

	// StringEncoded is true when json:",string" is set.
	StringEncoded bool

	// Overridden is true when WireName differs from the name derived from
	// the Go identifier.
	Overridden bool
}

// Field returns the field with the given wire name.
func (t *Type) Field(wireName string) (Field, bool) {
	for _, f := range t.Fields {
		if f.WireName == wireName {
			return f, true
		}
	}
	return Field{}, false
}

// Overrides returns the Go name -> wire name table for fields whose wire name is
// not the default derived name.
func (t *Type) Overrides() map[string]string {
	out := map[string]string{}
	for _, f := range t.Fields {
		if f.Overridden {
			out[f.Name] = f.WireName
		}
	}
	return out
}

var (
	collectionType  = reflect.TypeFor[Collection]()
	marshalerType   = reflect.TypeFor[json.Marshaler]()
	textMarshalType = reflect.TypeFor[encoding.TextMarshaler]()
	rawMessageType  = reflect.TypeFor[json.RawMessage]()
)

// Describe reflects a model. v may be a struct value, a pointer to a struct, or a
// reflect.Type of either.
func Describe(v any) (*Type, error) {
	t, ok := v.(reflect.Type)
	if !ok {
		if v == nil {
			return nil, fmt.Errorf("model: cannot describe nil")
		}
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model: %s is not a struct", t)
	}

	desc := &Type{
		Name:   t.Name(),
		GoType: t,
	}
	if err := collectFields(t, &desc.Fields, map[reflect.Type]bool{}); err != nil {
		return nil, fmt.Errorf("model: %s: %w", t, err)
	}

	if reflect.PointerTo(t).Implements(collectionType) {
		key := reflect.New(t).Interface().(Collection).CollectionKey()
		if _, ok := desc.Field(key); !ok {
			return nil, fmt.Errorf("model: %s: collection key %q is not a field", t, key)
		}
		desc.CollectionKey = key
	}
	return desc, nil
}

func collectFields(t reflect.Type, fields *[]Field, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		// Embedded structs without a json name are flattened, as encoding/json does.
		if sf.Anonymous && name == "" {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				if err := collectFields(et, fields, seen); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		f := Field{
			Name:          sf.Name,
			WireName:      name,
			Optional:      hasOption(opts, "omitempty") || hasOption(opts, "omitzero"),
			StringEncoded: hasOption(opts, "string"),
		}
		if f.WireName == "" {
			f.WireName = sf.Name
		}
		f.Overridden = f.WireName != DefaultWireName(sf.Name)
		f.Kind, f.Ref, f.Repeated = classify(sf.Type)
		*fields = append(*fields, f)
	}
	return nil
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == want {
			return true
		}
	}
	return false
}

// classify reports the wire kind of t. Slices report their element kind.
func classify(t reflect.Type) (kind Kind, ref string, repeated bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == rawMessageType {
		return KindAny, "", false
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		k, r, _ := classify(t.Elem())
		return k, r, true
	}
	if t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType) {
		return KindAny, "", false
	}
	if t.Implements(textMarshalType) || reflect.PointerTo(t).Implements(textMarshalType) {
		return KindString, "", false
	}

	switch t.Kind() {
	case reflect.String:
		return KindString, "", false
	case reflect.Slice: // []byte, base64 on the wire
		return KindString, "", false
	case reflect.Bool:
		return KindBoolean, "", false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger, "", false
	case reflect.Float32, reflect.Float64:
		return KindNumber, "", false
	case reflect.Struct:
		return KindObject, t.Name(), false
	case reflect.Map:
		_, r, _ := classify(t.Elem())
		return KindMap, r, false
	default:
		return KindAny, "", false
	}
}

// DefaultWireName derives the JSON key a generator would emit for a Go field name:
// the leading word is lowercased, and a leading acronym is lowercased as a whole
// ("ID" -> "id", "URLPath" -> "urlPath").
func DefaultWireName(goName string) string {
	runes := []rune(goName)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return goName
	case n == 1 || n == len(runes):
		// "Name" -> "name", "ID" -> "id"
	default:
		// "URLPath": keep the P that starts the next word.
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
