package restbind

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// Params maps parameter names to values. Callers may supply strings, integers,
// booleans, fmt.Stringers, or slices of those for repeated parameters. The
// binding normalizes them before the [Invoker] sees them: scalars become string
// and repeated parameters become []string in caller order. The reserved key
// [PostBody] carries the request body.
type Params map[string]any

// String returns a normalized scalar value.
func (p Params) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// Strings returns a normalized repeated value, or a scalar as a one-element slice.
func (p Params) Strings(name string) []string {
	switch v := p[name].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Names returns the parameter names, sorted.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var encoder = schema.NewEncoder()

// Ptr returns a pointer to v. Optional scalars in options and models are
// pointers so that zero values can be sent.
func Ptr[T any](v T) *T {
	return &v
}

// EncodeOptions converts an optional-parameter container into Params. opts may
// be nil, a Params or map[string]any, url.Values, or a struct (or pointer to
// one) whose fields carry schema tags:
//
//	type ListOptions struct {
//	    Prefix     string   `schema:"prefix,omitempty"`
//	    MaxResults *int     `schema:"maxResults,omitempty"`
//	    Sort       []string `schema:"sort,omitempty"`
//	}
//
// Slice fields become repeated parameters. A nil pointer field is left out; a
// non-nil one is sent even when it points to a zero value.
func EncodeOptions(opts any) (Params, error) {
	switch o := opts.(type) {
	case nil:
		return nil, nil
	case Params:
		return o, nil
	case map[string]any:
		return Params(o), nil
	case map[string]string:
		out := make(Params, len(o))
		for k, v := range o {
			out[k] = v
		}
		return out, nil
	case url.Values:
		return fromValues(o), nil
	}

	v := reflect.ValueOf(opts)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported options type %T", opts)
	}

	values := url.Values{}
	if err := encoder.Encode(v.Interface(), values); err != nil {
		return nil, err
	}
	out := fromValues(values)

	// A slice field is a repeated parameter even when it holds one element.
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type.Kind() != reflect.Slice {
			continue
		}
		name := schemaName(t.Field(i))
		if vals, ok := values[name]; ok {
			out[name] = vals
		}
	}
	return out, nil
}

func fromValues(values url.Values) Params {
	out := make(Params, len(values))
	for k, vals := range values {
		if len(vals) == 1 {
			out[k] = vals[0]
		} else {
			out[k] = vals
		}
	}
	return out
}

func schemaName(f reflect.StructField) string {
	tag, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
	if tag == "" {
		return f.Name
	}
	return tag
}

// normalize checks v against the declared type of p and renders it as strings.
// Scalars yield one value. Slices are only accepted for repeated parameters.
func normalize(p *ParameterSpec, v any) ([]string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		if !p.Repeated {
			return nil, fmt.Errorf("parameter %q is not repeated, got %T", p.Name, v)
		}
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := formatScalar(p, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	s, err := formatScalar(p, v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func formatScalar(p *ParameterSpec, v any) (string, error) {
	if s, ok := v.(fmt.Stringer); ok && p.Type == TypeString {
		return s.String(), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch p.Type {
	case TypeString:
		switch rv.Kind() {
		case reflect.String:
			return rv.String(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return strconv.FormatUint(rv.Uint(), 10), nil
		}
	case TypeInteger:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return strconv.FormatUint(rv.Uint(), 10), nil
		case reflect.String:
			if _, err := strconv.ParseInt(rv.String(), 10, 64); err != nil {
				return "", fmt.Errorf("parameter %q must be an integer, got %q", p.Name, rv.String())
			}
			return rv.String(), nil
		}
	case TypeBoolean:
		switch rv.Kind() {
		case reflect.Bool:
			return strconv.FormatBool(rv.Bool()), nil
		case reflect.String:
			b, err := strconv.ParseBool(rv.String())
			if err != nil {
				return "", fmt.Errorf("parameter %q must be a boolean, got %q", p.Name, rv.String())
			}
			return strconv.FormatBool(b), nil
		}
	}
	return "", fmt.Errorf("parameter %q must be %s, got %T", p.Name, p.Type, v)
}

// isEmpty reports whether a raw caller value counts as absent for a required
// parameter.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
