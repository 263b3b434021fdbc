// Package restbind binds declaratively described REST operations to Go calls.
//
// A [ServiceSpec] lists a service's resources and their operations: HTTP
// method, path template, parameters with their location and type, and the
// request and response model names. A [Service] pairs a spec with an [Invoker]
// and checks every call against it before anything is sent, so a missing or
// ill-typed parameter never reaches the network. [HTTPTransport] is the invoker
// that talks to the real API.
//
// Typed bindings, such as the packages under services/, wrap [Call] and [Exec]:
//
//	func (s *BucketsService) Get(ctx context.Context, bucket string, opts *BucketsGetOptions) (*Bucket, error) {
//	    return restbind.Call[Bucket](ctx, s.r, "get", restbind.Params{"bucket": bucket}, opts)
//	}
//
// Dynamic callers use [Service.Call] with a single [Params] map.
package restbind
