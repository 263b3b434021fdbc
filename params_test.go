package restbind

import (
	"net/url"
	"reflect"
	"testing"
)

type listOptions struct {
	MaxResults int      `schema:"maxResults,omitempty"`
	PageToken  string   `schema:"pageToken,omitempty"`
	Sort       []string `schema:"sort,omitempty"`
	WithParts  bool     `schema:"withParts,omitempty"`
	MinWeight  *int64   `schema:"minWeight,omitempty"`
	Active     *bool    `schema:"active,omitempty"`
}

func TestEncodeOptions(t *testing.T) {
	tests := []struct {
		name string
		opts any
		want Params
	}{
		{"nil", nil, nil},
		{"nil pointer", (*listOptions)(nil), nil},
		{"params", Params{"a": 1}, Params{"a": 1}},
		{"map any", map[string]any{"a": true}, Params{"a": true}},
		{"map string", map[string]string{"a": "b"}, Params{"a": "b"}},
		{"url values", url.Values{"a": {"1"}, "b": {"2", "3"}}, Params{"a": "1", "b": []string{"2", "3"}}},
		{"empty struct", listOptions{}, Params{}},
		{
			"struct",
			&listOptions{MaxResults: 10, Sort: []string{"+clicks", "-date"}, WithParts: true},
			Params{"maxResults": "10", "sort": []string{"+clicks", "-date"}, "withParts": "true"},
		},
		{
			"zero pointers are sent",
			listOptions{MinWeight: Ptr[int64](0), Active: Ptr(false)},
			Params{"minWeight": "0", "active": "false"},
		},
		{
			"single element slice stays repeated",
			listOptions{Sort: []string{"name"}},
			Params{"sort": []string{"name"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeOptions(tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestEncodeOptions_Unsupported(t *testing.T) {
	if _, err := EncodeOptions(42); err == nil {
		t.Error("expected error for non-struct options")
	}
}

func TestNormalize(t *testing.T) {
	str := &ParameterSpec{Name: "s", Type: TypeString}
	num := &ParameterSpec{Name: "n", Type: TypeInteger}
	flag := &ParameterSpec{Name: "b", Type: TypeBoolean}
	rep := &ParameterSpec{Name: "r", Type: TypeString, Repeated: true}

	tests := []struct {
		name    string
		p       *ParameterSpec
		v       any
		want    []string
		wantErr bool
	}{
		{"string", str, "x", []string{"x"}, false},
		{"int as string", str, int64(1400000000), []string{"1400000000"}, false},
		{"stringer", str, url.URL{Scheme: "https", Host: "a"}, nil, true},
		{"stringer pointer", str, &url.URL{Scheme: "https", Host: "a"}, []string{"https://a"}, false},
		{"bool as string", str, true, nil, true},
		{"integer", num, 25, []string{"25"}, false},
		{"unsigned", num, uint(7), []string{"7"}, false},
		{"integer string", num, "25", []string{"25"}, false},
		{"integer bad string", num, "many", nil, true},
		{"integer float", num, 2.5, nil, true},
		{"boolean", flag, false, []string{"false"}, false},
		{"boolean string", flag, "1", []string{"true"}, false},
		{"boolean bad string", flag, "yes", nil, true},
		{"repeated scalar", rep, "a", []string{"a"}, false},
		{"repeated order kept", rep, []string{"+clicks", "-date"}, []string{"+clicks", "-date"}, false},
		{"repeated any", rep, []any{"a", 2}, []string{"a", "2"}, false},
		{"slice for scalar", str, []string{"a", "b"}, nil, true},
		{"map", str, map[string]string{}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize(tt.p, tt.v)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParams_Accessors(t *testing.T) {
	p := Params{"b": "x", "a": []string{"1", "2"}, "c": 3}
	if p.String("b") != "x" || p.String("c") != "" {
		t.Errorf("unexpected String results")
	}
	if !reflect.DeepEqual(p.Strings("a"), []string{"1", "2"}) {
		t.Errorf("expected repeated values, got %v", p.Strings("a"))
	}
	if !reflect.DeepEqual(p.Strings("b"), []string{"x"}) {
		t.Errorf("expected scalar as slice, got %v", p.Strings("b"))
	}
	if !reflect.DeepEqual(p.Names(), []string{"a", "b", "c"}) {
		t.Errorf("expected sorted names, got %v", p.Names())
	}
}
