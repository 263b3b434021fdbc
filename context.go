package restbind

import (
	"context"
)

type contextKey struct {
	name string
}

var callInfoKey = &contextKey{"call_info"}

// CallInfo describes the call in flight. Interceptors receive it directly; the
// [Invoker] can retrieve it with [CallFromContext].
type CallInfo struct {
	Service   *ServiceSpec
	Resource  string
	Operation *OperationSpec
}

// ID returns "service.resource.operation".
func (i *CallInfo) ID() string {
	return i.Service.Name + "." + i.Resource + "." + i.Operation.Name
}

// Parameter returns the parameter the operation accepts under name, including
// service-wide parameters.
func (i *CallInfo) Parameter(name string) (*ParameterSpec, bool) {
	return i.Service.Parameter(i.Operation, name)
}

// CallFromContext returns the call in flight.
func CallFromContext(ctx context.Context) (*CallInfo, bool) {
	info, ok := ctx.Value(callInfoKey).(*CallInfo)
	return info, ok
}

func withCallInfo(ctx context.Context, info *CallInfo) context.Context {
	return context.WithValue(ctx, callInfoKey, info)
}
