package restbind

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/broady/restbind/model"
)

// Registry indexes several validated services by name.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	services map[string]*ServiceSpec
}

// NewRegistry validates specs and indexes them by name.
func NewRegistry(specs ...*ServiceSpec) (*Registry, error) {
	r := &Registry{services: make(map[string]*ServiceSpec, len(specs))}
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("service %q: %w", spec.Name, err)
		}
		if _, dup := r.services[spec.Name]; dup {
			return nil, fmt.Errorf("service %q registered twice", spec.Name)
		}
		r.services[spec.Name] = spec
	}
	return r, nil
}

// Service returns the named service spec.
func (r *Registry) Service(name string) (*ServiceSpec, bool) {
	s, ok := r.services[name]
	return s, ok
}

// Services returns all service specs sorted by name.
func (r *Registry) Services() []*ServiceSpec {
	out := make([]*ServiceSpec, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *ServiceSpec) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Lookup returns the operation spec for service.resource.operation.
func (r *Registry) Lookup(service, resource, operation string) (*OperationSpec, error) {
	s, ok := r.services[service]
	if !ok {
		return nil, Errorf(CodeUnknownOperation, "unknown service %q", service).WithDetail("service", service)
	}
	return s.Lookup(resource, operation)
}

// Service binds a [ServiceSpec] to an [Invoker]. Configure it with the With...
// methods before issuing calls; after that it is safe for concurrent use.
type Service struct {
	spec          *ServiceSpec
	invoker       Invoker
	interceptors  []Interceptor
	logger        *slog.Logger
	models        *model.Registry
	bodyValidator *model.Validator
}

// NewService binds spec to invoker. The spec should already be validated.
func NewService(spec *ServiceSpec, invoker Invoker) *Service {
	return &Service{
		spec:    spec,
		invoker: invoker,
	}
}

// WithInterceptor adds an interceptor that wraps every call.
// Interceptors execute in the order they were added.
func (s *Service) WithInterceptor(i Interceptor) *Service {
	s.interceptors = append(s.interceptors, i)
	return s
}

// WithLogger sets a custom logger for the service.
// If not set, slog.Default() will be used.
func (s *Service) WithLogger(logger *slog.Logger) *Service {
	s.logger = logger
	return s
}

// WithModels registers the Go types of the service's models. Request bodies
// are then checked against the operation's request type, and [Service.Call]
// decodes responses into the registered type.
func (s *Service) WithModels(models *model.Registry) *Service {
	s.models = models
	return s
}

// WithBodyValidator validates dynamic request bodies (raw JSON and maps)
// against the declarative schema of the operation's request type.
func (s *Service) WithBodyValidator(v *model.Validator) *Service {
	s.bodyValidator = v
	return s
}

// Spec returns the bound service spec.
func (s *Service) Spec() *ServiceSpec {
	return s.spec
}

// Models returns the registered model types, or nil.
func (s *Service) Models() *model.Registry {
	return s.models
}

func (s *Service) getLogger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Resource returns a binding for the named resource.
func (s *Service) Resource(name string) (*Resource, error) {
	spec, err := s.spec.Resource(name)
	if err != nil {
		return nil, err
	}
	return &Resource{service: s, spec: spec}, nil
}

// MustResource is like Resource but panics if the resource is not declared.
// It is meant for static bindings built at package initialization.
func (s *Service) MustResource(name string) *Resource {
	r, err := s.Resource(name)
	if err != nil {
		panic(fmt.Sprintf("restbind: %s: %v", s.spec.Name, err))
	}
	return r
}

// Call dispatches an operation by name. Required and optional parameters share
// one map. The response is decoded into the registered model type when there is
// one, and into a map[string]any otherwise. Operations without a response type
// return nil.
func (s *Service) Call(ctx context.Context, resource, operation string, params Params) (any, error) {
	r, err := s.Resource(resource)
	if err != nil {
		return nil, err
	}
	op, err := r.spec.Lookup(operation)
	if err != nil {
		return nil, err
	}

	var out any
	if op.ResponseType != "" {
		if v, ok := s.models.New(op.ResponseType); ok {
			out = v
		} else {
			out = &map[string]any{}
		}
	}
	if err := r.invoke(ctx, op, params, nil, out); err != nil {
		return nil, err
	}
	if m, ok := out.(*map[string]any); ok {
		return *m, nil
	}
	return out, nil
}

// checkResponse reports whether out can hold the response of op.
func (s *Service) checkResponse(op *OperationSpec, out any) error {
	if out == nil || op.ResponseType == "" {
		return nil
	}
	want, ok := s.models.Lookup(op.ResponseType)
	if !ok {
		return nil
	}
	got := reflect.TypeOf(out)
	if got.Kind() == reflect.Pointer && got.Elem() == want {
		return nil
	}
	switch out.(type) {
	case *map[string]any, *json.RawMessage, *any:
		return nil
	}
	return Errorf(CodeInvalidArgument, "%s returns %s, cannot decode into %s", op.ID, op.ResponseType, got)
}
