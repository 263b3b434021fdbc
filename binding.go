package restbind

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Resource is the client-side binding of one remote resource. Its operations
// are invoked through [Call], [Exec] or [Service.Call].
type Resource struct {
	service *Service
	spec    *ResourceSpec
}

// Name returns the resource name.
func (r *Resource) Name() string {
	return r.spec.Name
}

// Spec returns the resource spec.
func (r *Resource) Spec() *ResourceSpec {
	return r.spec
}

// Service returns the service the resource belongs to.
func (r *Resource) Service() *Service {
	return r.service
}

// Call invokes an operation that returns a response of type T.
//
// required holds the required parameters by name, including [PostBody] for
// operations that take a request body. optional is nil, a [Params] map, or an
// options struct (see [EncodeOptions]).
//
//	bucket, err := restbind.Call[Bucket](ctx, buckets, "get",
//	    restbind.Params{"bucket": "photos"},
//	    &GetOptions{Projection: "full"})
func Call[T any](ctx context.Context, r *Resource, operation string, required Params, optional any) (*T, error) {
	op, err := r.spec.Lookup(operation)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := r.service.checkResponse(op, out); err != nil {
		return nil, err
	}
	if err := r.invoke(ctx, op, required, optional, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exec invokes an operation and discards its response, for operations such as
// delete that return no content.
func Exec(ctx context.Context, r *Resource, operation string, required Params, optional any) error {
	op, err := r.spec.Lookup(operation)
	if err != nil {
		return err
	}
	return r.invoke(ctx, op, required, optional, nil)
}

// invoke binds the parameters, runs the interceptor chain and calls the
// invoker exactly once. out receives the decoded response.
func (r *Resource) invoke(ctx context.Context, op *OperationSpec, required Params, optional any, out any) error {
	params, err := r.bind(op, required, optional)
	if err != nil {
		r.service.getLogger().DebugContext(ctx, "call rejected",
			slog.String("operation", op.ID),
			slog.Any("error", err))
		return err
	}

	info := &CallInfo{
		Service:   r.service.spec,
		Resource:  r.spec.Name,
		Operation: op,
	}
	ctx = withCallInfo(ctx, info)

	handler := func(ctx context.Context, params Params) (any, error) {
		if err := r.service.invoker.Invoke(ctx, op, params, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	chain := chainInterceptors(r.service.interceptors)
	if chain == nil {
		_, err = handler(ctx, params)
		return err
	}
	_, err = chain(ctx, info, params, handler)
	return err
}

// bind merges required and optional parameters, checks them against op and
// returns the normalized parameter map handed to the invoker.
func (r *Resource) bind(op *OperationSpec, required Params, optional any) (Params, error) {
	opts, err := EncodeOptions(optional)
	if err != nil {
		return nil, Errorf(CodeInvalidArgument, "%s: optional parameters: %v", op.ID, err)
	}

	merged := make(Params, len(required)+len(opts))
	for k, v := range required {
		merged[k] = v
	}
	for k, v := range opts {
		if _, dup := merged[k]; dup {
			return nil, Errorf(CodeInvalidArgument, "%s: parameter %q supplied twice", op.ID, k).
				WithDetail("parameter", k)
		}
		merged[k] = v
	}

	for _, p := range op.RequiredParameters() {
		if isEmpty(merged[p.Name]) {
			return nil, Errorf(CodeMissingRequiredParameter, "%s: missing required parameter %q", op.ID, p.Name).
				WithDetail("parameter", p.Name)
		}
	}

	params := make(Params, len(merged))
	for _, name := range merged.Names() {
		v := merged[name]
		if name == PostBody {
			continue
		}
		p, ok := r.service.spec.Parameter(op, name)
		if !ok {
			return nil, Errorf(CodeInvalidArgument, "%s: unknown parameter %q", op.ID, name).
				WithDetail("parameter", name)
		}
		if isEmpty(v) {
			continue
		}
		vals, err := normalize(p, v)
		if err != nil {
			return nil, Errorf(CodeInvalidArgument, "%s: %v", op.ID, err).WithDetail("parameter", name)
		}
		if len(p.Enum) > 0 {
			for _, val := range vals {
				if !slices.Contains(p.Enum, val) {
					return nil, Errorf(CodeInvalidArgument, "%s: parameter %q must be one of %v, got %q", op.ID, name, p.Enum, val).
						WithDetail("parameter", name)
				}
			}
		}
		if p.Repeated {
			params[name] = vals
		} else {
			params[name] = vals[0]
		}
	}

	body := merged[PostBody]
	switch {
	case op.RequestType == "" && !isEmpty(body):
		return nil, Errorf(CodeInvalidArgument, "%s: operation takes no request body", op.ID)
	case op.RequestType != "" && isEmpty(body):
		return nil, Errorf(CodeMissingRequiredParameter, "%s: missing request body %s", op.ID, op.RequestType).
			WithDetail("parameter", PostBody)
	case op.RequestType != "":
		if err := r.service.checkBody(op, body); err != nil {
			return nil, err
		}
		params[PostBody] = body
	}
	return params, nil
}

// checkBody checks a request body against the operation's request type.
// Typed bodies must be the registered Go type and pass its validate tags.
// Dynamic bodies are checked against the declarative schema when a body
// validator is configured.
func (s *Service) checkBody(op *OperationSpec, body any) error {
	switch b := body.(type) {
	case json.RawMessage, []byte, map[string]any:
		if s.bodyValidator == nil || !s.bodyValidator.Has(op.RequestType) {
			return nil
		}
		if err := s.bodyValidator.Validate(op.RequestType, b); err != nil {
			return Errorf(CodeInvalidArgument, "%s: request body: %v", op.ID, err).
				WithDetail("type", op.RequestType)
		}
		return nil
	}

	t := reflect.TypeOf(body)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if want, ok := s.models.Lookup(op.RequestType); ok && t != want {
		return Errorf(CodeInvalidArgument, "%s: request body must be %s, got %T", op.ID, op.RequestType, body).
			WithDetail("type", op.RequestType)
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(body); err != nil {
		return AsError(err).WithDetail("type", op.RequestType)
	}
	return nil
}
