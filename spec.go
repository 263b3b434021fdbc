package restbind

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/broady/restbind/model"
)

// Location says where a parameter travels in the HTTP request.
type Location string

const (
	LocationPath  Location = "path"
	LocationQuery Location = "query"
)

// Type is the primitive type of a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// PostBody is the reserved parameter name that carries the JSON request body.
const PostBody = "postBody"

// ParameterSpec declares one parameter of an operation.
type ParameterSpec struct {
	Name        string
	Location    Location
	Type        Type
	Required    bool
	Repeated    bool
	Format      string
	Enum        []string
	Description string
}

// OperationSpec declares one remote call.
type OperationSpec struct {
	// Name is the method name within its resource, e.g. "insert".
	Name string

	// ID is the fully qualified id, e.g. "storage.buckets.insert".
	ID string

	// Path is the template relative to the service path, e.g. "b/{bucket}/o/{+object}".
	Path string

	HTTPMethod string

	// Parameters are ordered: required parameters first, in positional order.
	Parameters []*ParameterSpec

	// RequestType names the model accepted as postBody. Empty means no body.
	RequestType string

	// ResponseType names the model the response decodes into. Empty means the
	// operation returns no content.
	ResponseType string

	Scopes      []string
	Description string
}

// Parameter returns the parameter declared under name.
func (op *OperationSpec) Parameter(name string) (*ParameterSpec, bool) {
	for _, p := range op.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// RequiredParameters returns the required parameters in positional order.
func (op *OperationSpec) RequiredParameters() []*ParameterSpec {
	var out []*ParameterSpec
	for _, p := range op.Parameters {
		if p.Required {
			out = append(out, p)
		}
	}
	return out
}

// ResourceSpec groups the operations of one resource. Nested resources have
// dotted names, e.g. "accounts.containers.tags".
type ResourceSpec struct {
	Name       string
	Operations []*OperationSpec
}

// Lookup returns the named operation.
func (r *ResourceSpec) Lookup(operation string) (*OperationSpec, error) {
	for _, op := range r.Operations {
		if op.Name == operation {
			return op, nil
		}
	}
	return nil, Errorf(CodeUnknownOperation, "resource %q has no operation %q", r.Name, operation).
		WithDetails(map[string]any{"resource": r.Name, "operation": operation})
}

// Scope is one OAuth scope a service declares.
type Scope struct {
	// Name is a short identifier such as "DEVSTORAGE_READ_ONLY".
	Name        string
	URL         string
	Description string
}

var scopeReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_")

// ScopeName derives a constant-style name from a scope URL:
// "https://www.googleapis.com/auth/devstorage.read_only" becomes
// "DEVSTORAGE_READ_ONLY" and "https://mail.google.com/" becomes
// "MAIL_GOOGLE_COM".
func ScopeName(scopeURL string) string {
	s := strings.TrimSuffix(scopeURL, "/")
	if i := strings.Index(s, "/auth/"); i >= 0 {
		s = s[i+len("/auth/"):]
	} else if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToUpper(scopeReplacer.Replace(s))
}

// ServiceSpec is the static description of one API surface. It is built once,
// validated, and then shared read-only.
type ServiceSpec struct {
	Name        string
	Version     string
	Title       string
	RootURL     string
	ServicePath string
	Scopes      []Scope
	Resources   []*ResourceSpec

	// Parameters are optional query parameters accepted by every operation.
	Parameters []*ParameterSpec

	// Models holds the declarative schemas by name. It may be nil.
	Models map[string]*model.Schema
}

// BaseURL returns RootURL joined with ServicePath.
func (s *ServiceSpec) BaseURL() string {
	return strings.TrimSuffix(s.RootURL, "/") + "/" + strings.TrimPrefix(s.ServicePath, "/")
}

// Resource returns the named resource.
func (s *ServiceSpec) Resource(name string) (*ResourceSpec, error) {
	for _, r := range s.Resources {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, Errorf(CodeUnknownOperation, "service %q has no resource %q", s.Name, name).
		WithDetail("resource", name)
}

// Lookup returns the operation for the given resource and operation names.
func (s *ServiceSpec) Lookup(resource, operation string) (*OperationSpec, error) {
	r, err := s.Resource(resource)
	if err != nil {
		return nil, err
	}
	return r.Lookup(operation)
}

// Parameter returns the parameter an operation accepts under name: its own
// declaration first, then the service-wide ones.
func (s *ServiceSpec) Parameter(op *OperationSpec, name string) (*ParameterSpec, bool) {
	if p, ok := op.Parameter(name); ok {
		return p, true
	}
	for _, p := range s.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// Validate checks s for structural problems. Every path placeholder must
// be backed by exactly one required path parameter and every path parameter must
// appear in its template. All problems are reported, joined.
func (s *ServiceSpec) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.Name == "" {
		fail("service name is empty")
	}
	if _, err := url.Parse(s.BaseURL()); err != nil {
		fail("%s: base URL: %v", s.Name, err)
	}
	checkParams(s.Name, s.Parameters, fail)
	for _, p := range s.Parameters {
		if p.Location != LocationQuery || p.Required {
			fail("%s: service parameter %q must be an optional query parameter", s.Name, p.Name)
		}
	}

	resources := map[string]bool{}
	for _, r := range s.Resources {
		if r.Name == "" {
			fail("%s: resource with empty name", s.Name)
		}
		if resources[r.Name] {
			fail("%s: duplicate resource %q", s.Name, r.Name)
		}
		resources[r.Name] = true

		ops := map[string]bool{}
		for _, op := range r.Operations {
			where := s.Name + "." + r.Name + "." + op.Name
			if op.Name == "" {
				fail("%s.%s: operation with empty name", s.Name, r.Name)
			}
			if ops[op.Name] {
				fail("%s: duplicate operation", where)
			}
			ops[op.Name] = true
			s.validateOperation(where, op, fail)
		}
	}
	return errors.Join(errs...)
}

func (s *ServiceSpec) validateOperation(where string, op *OperationSpec, fail func(string, ...any)) {
	if !validMethods[op.HTTPMethod] {
		fail("%s: invalid HTTP method %q", where, op.HTTPMethod)
	}
	checkParams(where, op.Parameters, fail)

	seenOptional := false
	for _, p := range op.Parameters {
		if !p.Required {
			seenOptional = true
		} else if seenOptional {
			fail("%s: required parameter %q follows an optional one", where, p.Name)
		}
	}

	placeholders := map[string]int{}
	for _, ph := range parsePath(op.Path) {
		placeholders[ph.name]++
	}
	for name, n := range placeholders {
		if n > 1 {
			fail("%s: placeholder {%s} appears %d times", where, name, n)
		}
		p, ok := op.Parameter(name)
		switch {
		case !ok:
			fail("%s: placeholder {%s} has no parameter", where, name)
		case p.Location != LocationPath:
			fail("%s: placeholder {%s} is declared in %s", where, name, p.Location)
		case !p.Required:
			fail("%s: path parameter %q is not required", where, name)
		}
	}
	for _, p := range op.Parameters {
		if p.Location == LocationPath && placeholders[p.Name] == 0 {
			fail("%s: path parameter %q does not appear in %q", where, p.Name, op.Path)
		}
	}

	if len(s.Models) > 0 {
		if op.RequestType != "" && s.Models[op.RequestType] == nil {
			fail("%s: unknown request type %q", where, op.RequestType)
		}
		if op.ResponseType != "" && s.Models[op.ResponseType] == nil {
			fail("%s: unknown response type %q", where, op.ResponseType)
		}
	}
}

func checkParams(where string, params []*ParameterSpec, fail func(string, ...any)) {
	names := map[string]bool{}
	for _, p := range params {
		if p.Name == "" || p.Name == PostBody {
			fail("%s: invalid parameter name %q", where, p.Name)
		}
		if names[p.Name] {
			fail("%s: duplicate parameter %q", where, p.Name)
		}
		names[p.Name] = true
		switch p.Location {
		case LocationPath, LocationQuery:
		default:
			fail("%s: parameter %q has invalid location %q", where, p.Name, p.Location)
		}
		switch p.Type {
		case TypeString, TypeInteger, TypeBoolean:
		default:
			fail("%s: parameter %q has invalid type %q", where, p.Name, p.Type)
		}
		if p.Location == LocationPath && p.Repeated {
			fail("%s: path parameter %q cannot be repeated", where, p.Name)
		}
	}
}

var placeholderRE = regexp.MustCompile(`\{(\+?)([^{}+]+)\}`)

type placeholder struct {
	name     string
	reserved bool
	start    int
	end      int
}

func parsePath(path string) []placeholder {
	var out []placeholder
	for _, m := range placeholderRE.FindAllStringSubmatchIndex(path, -1) {
		out = append(out, placeholder{
			name:     path[m[4]:m[5]],
			reserved: m[3] > m[2],
			start:    m[0],
			end:      m[1],
		})
	}
	return out
}

// ExpandPath substitutes the path parameters of op into its template. Simple
// placeholders ({name}) are escaped as a single path segment. Reserved
// placeholders ({+name}) keep their slashes. params holds normalized values, as
// passed to an [Invoker].
func ExpandPath(op *OperationSpec, params Params) (string, error) {
	var b strings.Builder
	last := 0
	for _, ph := range parsePath(op.Path) {
		b.WriteString(op.Path[last:ph.start])
		last = ph.end

		v, _ := params[ph.name].(string)
		if v == "" {
			return "", Errorf(CodeUnresolvedPathParameter, "%s: path parameter %q is unresolved", op.ID, ph.name).
				WithDetail("parameter", ph.name)
		}
		if ph.reserved {
			segments := strings.Split(v, "/")
			for i, seg := range segments {
				segments[i] = url.PathEscape(seg)
			}
			b.WriteString(strings.Join(segments, "/"))
		} else {
			b.WriteString(url.PathEscape(v))
		}
	}
	b.WriteString(op.Path[last:])
	return b.String(), nil
}
