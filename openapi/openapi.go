// Package openapi builds restbind service specs from OpenAPI 3 and Swagger 2
// documents. Swagger 2 input is converted to OpenAPI 3 first.
//
// Each operation is assigned to the resource named by its first tag, or by the
// first literal segment of its path when it has no tags. Operation names come
// from the last dotted segment of operationId, or from the HTTP method when no
// operationId is set. Header and cookie parameters are not represented.
package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/broady/restbind"
	"github.com/broady/restbind/model"
)

// Settings configures the conversion.
type Settings struct {
	// Name overrides the service name derived from info.title.
	Name string
}

// Option mutates Settings.
type Option func(*Settings)

// WithName sets the service name.
func WithName(name string) Option { return func(s *Settings) { s.Name = name } }

// Load reads the document at path and converts it.
func Load(ctx context.Context, path string, opts ...Option) (*restbind.ServiceSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	spec, err := Parse(ctx, raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Parse converts an OpenAPI 3 or Swagger 2 document, in JSON or YAML, into a
// validated service spec.
func Parse(ctx context.Context, raw []byte, opts ...Option) (*restbind.ServiceSpec, error) {
	var settings Settings
	for _, opt := range opts {
		opt(&settings)
	}

	doc, err := loadDocument(ctx, raw)
	if err != nil {
		return nil, err
	}
	return convert(doc, settings)
}

// DetectVersion returns 3 for OpenAPI 3 documents and 2 for Swagger 2.
func DetectVersion(raw []byte) (int, error) {
	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return 0, fmt.Errorf("openapi: parse failed: %w", err)
	}
	if s, ok := root["openapi"].(string); ok && strings.HasPrefix(strings.TrimSpace(s), "3.") {
		return 3, nil
	}
	if s, ok := root["swagger"].(string); ok && strings.HasPrefix(strings.TrimSpace(s), "2.") {
		return 2, nil
	}
	return 0, errors.New("openapi: missing or unknown version (expected 'openapi: 3.x' or 'swagger: 2.0')")
}

func loadDocument(ctx context.Context, raw []byte) (*openapi3.T, error) {
	version, err := DetectVersion(raw)
	if err != nil {
		return nil, err
	}

	loader := openapi3.NewLoader()
	var doc *openapi3.T
	switch version {
	case 3:
		doc, err = loader.LoadFromData(raw)
		if err != nil {
			return nil, fmt.Errorf("openapi: parse failed: %w", err)
		}
	case 2:
		doc, err = convertV2(raw)
		if err != nil {
			return nil, fmt.Errorf("openapi: convert swagger 2.0: %w", err)
		}
		if err := loader.ResolveRefsIn(doc, nil); err != nil {
			return nil, fmt.Errorf("openapi: resolve refs: %w", err)
		}
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: invalid document: %w", err)
	}
	return doc, nil
}

func convertV2(raw []byte) (*openapi3.T, error) {
	data := raw
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		var root any
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return nil, err
		}
		var err error
		if data, err = json.Marshal(jsonCompatible(root)); err != nil {
			return nil, err
		}
	}
	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, err
	}
	return openapi2conv.ToV3(&v2)
}

// jsonCompatible turns the map[any]any values YAML produces for non-string keys
// (such as response codes) into map[string]any.
func jsonCompatible(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = jsonCompatible(e)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = jsonCompatible(e)
		}
		return out
	case []any:
		for i, e := range v {
			v[i] = jsonCompatible(e)
		}
		return v
	}
	return v
}

type converter struct {
	spec   *restbind.ServiceSpec
	models *schemaBuilder
	errs   []error
}

func convert(doc *openapi3.T, settings Settings) (*restbind.ServiceSpec, error) {
	spec := &restbind.ServiceSpec{Name: settings.Name}
	if doc.Info != nil {
		spec.Title = doc.Info.Title
		spec.Version = doc.Info.Version
		if spec.Name == "" {
			spec.Name = serviceName(doc.Info.Title)
		}
	}
	if spec.Name == "" {
		return nil, errors.New("openapi: document has no title; set a service name")
	}
	if len(doc.Servers) > 0 && doc.Servers[0] != nil {
		root, servicePath, err := splitServerURL(doc.Servers[0].URL)
		if err != nil {
			return nil, fmt.Errorf("openapi: server url: %w", err)
		}
		spec.RootURL, spec.ServicePath = root, servicePath
	}

	c := &converter{spec: spec, models: newSchemaBuilder()}
	c.addOperations(doc)

	spec.Models = c.models.out
	if len(spec.Models) == 0 {
		spec.Models = nil
	}
	var scopes []string
	for _, r := range spec.Resources {
		for _, op := range r.Operations {
			scopes = append(scopes, op.Scopes...)
		}
	}
	slices.Sort(scopes)
	for _, s := range slices.Compact(scopes) {
		spec.Scopes = append(spec.Scopes, restbind.Scope{Name: restbind.ScopeName(s), URL: s})
	}

	errs := append(c.errs, c.models.errs...)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("openapi: %s: %w", spec.Name, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	return spec, nil
}

func (c *converter) addOperations(doc *openapi3.T) {
	resources := map[string]*restbind.ResourceSpec{}
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		ops := item.Operations()
		methods := make([]string, 0, len(ops))
		for m := range ops {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := ops[method]
			resource := resourceName(op, path)
			if resource == "" {
				c.errs = append(c.errs, fmt.Errorf("%s %s: cannot derive a resource name", method, path))
				continue
			}
			spec, err := c.operation(doc, resource, method, path, item.Parameters, op)
			if err != nil {
				c.errs = append(c.errs, err)
				continue
			}
			r := resources[resource]
			if r == nil {
				r = &restbind.ResourceSpec{Name: resource}
				resources[resource] = r
				c.spec.Resources = append(c.spec.Resources, r)
			}
			r.Operations = append(r.Operations, spec)
		}
	}

	slices.SortFunc(c.spec.Resources, func(a, b *restbind.ResourceSpec) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, r := range c.spec.Resources {
		slices.SortFunc(r.Operations, func(a, b *restbind.OperationSpec) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
}

func (c *converter) operation(doc *openapi3.T, resource, method, path string, shared openapi3.Parameters, op *openapi3.Operation) (*restbind.OperationSpec, error) {
	name := operationName(op, method, path)
	out := &restbind.OperationSpec{
		Name:        name,
		ID:          c.spec.Name + "." + resource + "." + name,
		Path:        strings.TrimPrefix(path, "/"),
		HTTPMethod:  method,
		Description: firstNonEmpty(op.Description, op.Summary),
		Scopes:      scopes(doc, op),
	}
	where := method + " " + path

	// Operation parameters override path item parameters with the same name
	// and location.
	merged := map[string]*openapi3.Parameter{}
	for _, refs := range []openapi3.Parameters{shared, op.Parameters} {
		for _, ref := range refs {
			if ref == nil || ref.Value == nil {
				continue
			}
			merged[ref.Value.In+":"+ref.Value.Name] = ref.Value
		}
	}

	var pathParams, required, optional []*restbind.ParameterSpec
	var errs []error
	for _, key := range sortedKeys(merged) {
		p := merged[key]
		if p.In != openapi3.ParameterInPath && p.In != openapi3.ParameterInQuery {
			continue
		}
		ps, err := convertParam(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
			continue
		}
		switch {
		case ps.Location == restbind.LocationPath:
			pathParams = append(pathParams, ps)
		case ps.Required:
			required = append(required, ps)
		default:
			optional = append(optional, ps)
		}
	}
	// Path parameters keep the order they appear in the template.
	slices.SortFunc(pathParams, func(a, b *restbind.ParameterSpec) int {
		return strings.Index(path, "{"+a.Name+"}") - strings.Index(path, "{"+b.Name+"}")
	})
	out.Parameters = slices.Concat(pathParams, required, optional)

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		if mt := jsonContent(op.RequestBody.Value.Content); mt != nil && mt.Schema != nil {
			out.RequestType = c.models.named(mt.Schema, exported(resource)+exported(name)+"Request")
		}
	}
	if resp := successResponse(op.Responses); resp != nil {
		if mt := jsonContent(resp.Content); mt != nil && mt.Schema != nil {
			out.ResponseType = c.models.named(mt.Schema, exported(resource)+exported(name)+"Response")
		}
	}
	return out, errors.Join(errs...)
}

func convertParam(p *openapi3.Parameter) (*restbind.ParameterSpec, error) {
	out := &restbind.ParameterSpec{
		Name:        p.Name,
		Location:    restbind.LocationQuery,
		Required:    p.Required,
		Description: p.Description,
		Type:        restbind.TypeString,
	}
	if p.In == openapi3.ParameterInPath {
		out.Location = restbind.LocationPath
		out.Required = true
	}
	if p.Schema == nil || p.Schema.Value == nil {
		return out, nil
	}
	s := p.Schema.Value
	if s.Type == "array" {
		out.Repeated = true
		if s.Items == nil || s.Items.Value == nil {
			return out, nil
		}
		s = s.Items.Value
	}
	switch s.Type {
	case "", "string":
	case "integer":
		out.Type = restbind.TypeInteger
	case "boolean":
		out.Type = restbind.TypeBoolean
	default:
		return nil, fmt.Errorf("parameter %q: unsupported type %q", p.Name, s.Type)
	}
	out.Format = s.Format
	for _, e := range s.Enum {
		out.Enum = append(out.Enum, fmt.Sprint(e))
	}
	return out, nil
}

func scopes(doc *openapi3.T, op *openapi3.Operation) []string {
	reqs := doc.Security
	if op.Security != nil {
		reqs = *op.Security
	}
	var out []string
	for _, req := range reqs {
		for _, name := range sortedKeys(req) {
			for _, s := range req[name] {
				if !slices.Contains(out, s) {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func jsonContent(content openapi3.Content) *openapi3.MediaType {
	if mt := content.Get("application/json"); mt != nil {
		return mt
	}
	for _, ct := range sortedKeys(content) {
		if strings.HasSuffix(ct, "+json") {
			return content[ct]
		}
	}
	return nil
}

// successResponse picks 200, 201, 202, any other 2xx code, then default.
func successResponse(responses openapi3.Responses) *openapi3.Response {
	var codes []string
	for code := range responses {
		if strings.HasPrefix(code, "2") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	codes = append(codes, "default")
	for _, code := range codes {
		if ref := responses[code]; ref != nil && ref.Value != nil {
			return ref.Value
		}
	}
	return nil
}

func resourceName(op *openapi3.Operation, path string) string {
	for _, tag := range op.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			return tag
		}
	}
	for seg := range strings.SplitSeq(strings.Trim(path, "/"), "/") {
		if seg != "" && !strings.Contains(seg, "{") {
			return seg
		}
	}
	return ""
}

var defaultNames = map[string]string{
	"POST":   "insert",
	"PUT":    "update",
	"PATCH":  "patch",
	"DELETE": "delete",
}

func operationName(op *openapi3.Operation, method, path string) string {
	if id := op.OperationID; id != "" {
		if i := strings.LastIndex(id, "."); i >= 0 {
			return id[i+1:]
		}
		return id
	}
	if method == "GET" {
		if strings.HasSuffix(path, "}") {
			return "get"
		}
		return "list"
	}
	if name, ok := defaultNames[method]; ok {
		return name
	}
	return strings.ToLower(method)
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// serviceName turns a title such as "Swagger Petstore" into "swaggerpetstore".
func serviceName(title string) string {
	return nonWord.ReplaceAllString(strings.ToLower(title), "")
}

// splitServerURL splits "https://api.example.com/v1" into the root URL
// "https://api.example.com/" and the service path "v1/".
func splitServerURL(raw string) (root, servicePath string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	servicePath = strings.Trim(u.Path, "/")
	if servicePath != "" {
		servicePath += "/"
	}
	u.Path, u.RawPath = "/", ""
	return u.String(), servicePath, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func exported(s string) string {
	var b strings.Builder
	for part := range strings.FieldsFuncSeq(s, func(r rune) bool {
		return r == '.' || r == '-' || r == '_' || r == ' '
	}) {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// schemaBuilder collects model schemas reachable from operations. Referenced
// schemas keep their component name; inline objects are named after their
// owner.
type schemaBuilder struct {
	out  map[string]*model.Schema
	errs []error
}

func newSchemaBuilder() *schemaBuilder {
	return &schemaBuilder{out: make(map[string]*model.Schema)}
}

// named returns the model name for a request or response body, registering
// the schema under fallback when it is inline.
func (b *schemaBuilder) named(ref *openapi3.SchemaRef, fallback string) string {
	if ref.Ref != "" {
		name := refName(ref.Ref)
		b.object(name, ref.Value)
		return name
	}
	if ref.Value == nil || ref.Value.Type != "object" && len(ref.Value.Properties) == 0 {
		return ""
	}
	b.object(fallback, ref.Value)
	return fallback
}

func (b *schemaBuilder) object(name string, s *openapi3.Schema) {
	if _, done := b.out[name]; done {
		return
	}
	ms := &model.Schema{Name: name}
	b.out[name] = ms
	if s == nil {
		b.errs = append(b.errs, fmt.Errorf("schema %s is unresolved", name))
		return
	}
	ms.Description = s.Description
	for _, wire := range sortedKeys(s.Properties) {
		ms.Properties = append(ms.Properties, b.property(name, wire, s.Properties[wire]))
	}
	if p, ok := ms.Property("items"); ok && p.Repeated {
		ms.CollectionKey = "items"
	} else {
		for _, p := range ms.Properties {
			if p.Repeated {
				ms.CollectionKey = p.WireName
				break
			}
		}
	}
}

func (b *schemaBuilder) property(owner, wire string, ref *openapi3.SchemaRef) model.Property {
	p := model.Property{WireName: wire, Type: "any"}
	if ref == nil {
		return p
	}
	if ref.Ref != "" {
		name := refName(ref.Ref)
		b.object(name, ref.Value)
		p.Type, p.Ref = "object", name
		if ref.Value != nil {
			p.Description = ref.Value.Description
		}
		return p
	}
	s := ref.Value
	if s == nil {
		return p
	}
	p.Description = s.Description
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
	case "object", "":
		if len(s.Properties) == 0 {
			if s.Type == "object" {
				p.Type = "object"
			}
			return p
		}
		name := owner + exported(wire)
		b.object(name, s)
		p.Type, p.Ref = "object", name
	}
	return p
}

func refName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}
