// Package discovery builds restbind service specs from Google API Discovery
// documents, in their native JSON form or transcribed to YAML.
//
// Resources are flattened into dotted names ("accounts.containers.tags"),
// method parameters are ordered with the document's parameterOrder first, and
// schemas become model.Schema values. Inline object properties are lifted into
// schemas named after their owner ("Bucket" + "owner" = "BucketOwner").
package discovery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/broady/restbind"
	"github.com/broady/restbind/model"
)

// LooksLikeDiscovery reports whether raw appears to be a Discovery document.
func LooksLikeDiscovery(raw []byte) bool {
	var payload struct {
		Kind string `json:"kind" yaml:"kind"`
	}
	if err := unmarshal(raw, &payload); err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(payload.Kind), "discovery#")
}

// Decode parses a Discovery document. Input starting with '{' is read as JSON,
// anything else as YAML.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	if err := unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("discovery: parse failed: %w", err)
	}
	return &doc, nil
}

func unmarshal(raw []byte, v any) error {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(trimmed, v)
	}
	return yaml.Unmarshal(raw, v)
}

// Parse decodes raw and returns its validated service spec.
func Parse(raw []byte) (*restbind.ServiceSpec, error) {
	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return doc.ServiceSpec()
}

// Load reads and parses the Discovery document at path.
func Load(path string) (*restbind.ServiceSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}
	spec, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ServiceSpec converts the document into a validated service spec.
func (d *Document) ServiceSpec() (*restbind.ServiceSpec, error) {
	if d.Name == "" {
		return nil, errors.New("discovery: document has no name")
	}

	spec := &restbind.ServiceSpec{
		Name:        d.Name,
		Version:     d.Version,
		Title:       d.Title,
		RootURL:     d.RootURL,
		ServicePath: d.ServicePath,
		Scopes:      d.scopes(),
	}

	var errs []error
	for _, name := range sortedKeys(d.Parameters) {
		p, err := convertParam(name, d.Parameters[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		spec.Parameters = append(spec.Parameters, p)
	}

	models, err := convertSchemas(d.Schemas)
	if err != nil {
		errs = append(errs, err)
	}
	spec.Models = models

	if len(d.Methods) > 0 {
		r, err := d.convertResource(d.Name, d.Methods)
		if err != nil {
			errs = append(errs, err)
		}
		spec.Resources = append(spec.Resources, r)
	}
	for _, name := range sortedKeys(d.Resources) {
		errs = append(errs, d.collectResources(spec, name, d.Resources[name])...)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("discovery: %s: %w", d.Name, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}
	return spec, nil
}

// collectResources appends res and its children depth first. Resources that
// only group children are not emitted.
func (d *Document) collectResources(spec *restbind.ServiceSpec, name string, res *Resource) []error {
	if res == nil {
		return nil
	}
	var errs []error
	if len(res.Methods) > 0 {
		r, err := d.convertResource(name, res.Methods)
		if err != nil {
			errs = append(errs, err)
		}
		spec.Resources = append(spec.Resources, r)
	}
	for _, child := range sortedKeys(res.Resources) {
		errs = append(errs, d.collectResources(spec, name+"."+child, res.Resources[child])...)
	}
	return errs
}

func (d *Document) convertResource(name string, methods map[string]*Method) (*restbind.ResourceSpec, error) {
	r := &restbind.ResourceSpec{Name: name}
	var errs []error
	for _, m := range sortedKeys(methods) {
		op, err := d.convertMethod(name, m, methods[m])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Operations = append(r.Operations, op)
	}
	return r, errors.Join(errs...)
}

func (d *Document) convertMethod(resource, name string, m *Method) (*restbind.OperationSpec, error) {
	if m == nil {
		return nil, fmt.Errorf("%s.%s: empty method", resource, name)
	}
	id := m.ID
	if id == "" {
		id = d.Name + "." + resource + "." + name
	}
	op := &restbind.OperationSpec{
		Name:        name,
		ID:          id,
		Path:        m.Path,
		HTTPMethod:  strings.ToUpper(m.HTTPMethod),
		Scopes:      m.Scopes,
		Description: m.Description,
	}
	if m.Request != nil {
		op.RequestType = m.Request.Ref
	}
	if m.Response != nil {
		op.ResponseType = m.Response.Ref
	}

	var errs []error
	for _, pname := range parameterOrder(m) {
		p, err := convertParam(pname, m.Parameters[pname])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		op.Parameters = append(op.Parameters, p)
	}
	return op, errors.Join(errs...)
}

// parameterOrder lists parameterOrder entries first, then the remaining
// required parameters, then the optional ones. Both tails are sorted by name.
func parameterOrder(m *Method) []string {
	order := slices.Clone(m.ParameterOrder)
	var required, optional []string
	for _, name := range sortedKeys(m.Parameters) {
		if slices.Contains(order, name) {
			continue
		}
		if m.Parameters[name] != nil && m.Parameters[name].Required {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}
	return slices.Concat(order, required, optional)
}

func convertParam(name string, p *Param) (*restbind.ParameterSpec, error) {
	if p == nil {
		return nil, fmt.Errorf("parameter %q is not declared", name)
	}
	out := &restbind.ParameterSpec{
		Name:        name,
		Location:    restbind.LocationQuery,
		Required:    p.Required,
		Repeated:    p.Repeated,
		Format:      p.Format,
		Enum:        p.Enum,
		Description: p.Description,
	}
	switch p.Location {
	case "", "query":
	case "path":
		out.Location = restbind.LocationPath
	default:
		return nil, fmt.Errorf("parameter %q: unsupported location %q", name, p.Location)
	}
	switch p.Type {
	case "", "string":
		out.Type = restbind.TypeString
	case "integer":
		out.Type = restbind.TypeInteger
	case "boolean":
		out.Type = restbind.TypeBoolean
	default:
		return nil, fmt.Errorf("parameter %q: unsupported type %q", name, p.Type)
	}
	return out, nil
}

func (d *Document) scopes() []restbind.Scope {
	if d.Auth == nil {
		return nil
	}
	var scopes []restbind.Scope
	for _, url := range sortedKeys(d.Auth.OAuth2.Scopes) {
		scopes = append(scopes, restbind.Scope{
			Name:        restbind.ScopeName(url),
			URL:         url,
			Description: d.Auth.OAuth2.Scopes[url].Description,
		})
	}
	return scopes
}

func convertSchemas(schemas map[string]*Schema) (map[string]*model.Schema, error) {
	if len(schemas) == 0 {
		return nil, nil
	}
	b := &schemaBuilder{
		declared: schemas,
		out:      make(map[string]*model.Schema),
	}
	for _, name := range sortedKeys(schemas) {
		b.object(name, schemas[name])
	}
	for _, name := range sortedKeys(b.out) {
		for _, ref := range b.out[name].Refs() {
			if b.out[ref] == nil {
				b.errs = append(b.errs, fmt.Errorf("schema %s: unknown $ref %q", name, ref))
			}
		}
	}
	return b.out, errors.Join(b.errs...)
}

type schemaBuilder struct {
	declared map[string]*Schema
	out      map[string]*model.Schema
	errs     []error
}

func (b *schemaBuilder) object(name string, s *Schema) {
	if s == nil {
		b.errs = append(b.errs, fmt.Errorf("schema %s is empty", name))
		return
	}
	if _, dup := b.out[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("schema %s is declared twice", name))
		return
	}
	ms := &model.Schema{Name: name, Description: s.Description}
	b.out[name] = ms
	for _, wire := range sortedKeys(s.Properties) {
		ms.Properties = append(ms.Properties, b.property(name, wire, s.Properties[wire]))
	}
	ms.CollectionKey = collectionKey(ms)
}

func (b *schemaBuilder) property(owner, wire string, s *Schema) model.Property {
	p := model.Property{WireName: wire, Type: "any"}
	if s == nil {
		return p
	}
	p.Description = s.Description
	if s.Ref != "" {
		p.Type = "object"
		p.Ref = s.Ref
		return p
	}
	switch s.Type {
	case "string", "integer", "number", "boolean":
		p.Type = s.Type
		p.Format = s.Format
	case "array":
		item := b.property(owner, wire, s.Items)
		if item.Repeated || item.Map {
			item = model.Property{WireName: wire, Type: "any"}
		}
		item.Repeated = true
		item.Description = s.Description
		return item
	case "object":
		switch {
		case s.AdditionalProperties != nil:
			value := b.property(owner, wire, s.AdditionalProperties)
			if value.Repeated || value.Map {
				value = model.Property{WireName: wire, Type: "any"}
			}
			value.Map = true
			value.Description = s.Description
			return value
		case len(s.Properties) > 0:
			name := owner + exported(wire)
			if _, clash := b.declared[name]; clash {
				b.errs = append(b.errs, fmt.Errorf("schema %s: inline object %q collides with schema %s", owner, wire, name))
				return p
			}
			b.object(name, s)
			p.Type = "object"
			p.Ref = name
		default:
			p.Type = "object"
		}
	}
	return p
}

// collectionKey is "items" when that property is repeated, otherwise the first
// repeated property.
func collectionKey(s *model.Schema) string {
	if p, ok := s.Property("items"); ok && p.Repeated {
		return "items"
	}
	for _, p := range s.Properties {
		if p.Repeated {
			return p.WireName
		}
	}
	return ""
}

func exported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
