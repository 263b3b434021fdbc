package restbind

import (
	"context"
)

// HandlerFunc represents the next handler in an interceptor chain.
// The innermost handler calls the [Invoker]. res is the decoded response (nil
// for operations without one).
type HandlerFunc func(ctx context.Context, params Params) (res any, err error)

// Interceptor is a hook that wraps every call made through a [Service].
//
//	func timing(ctx context.Context, info *restbind.CallInfo, params restbind.Params, handler restbind.HandlerFunc) (any, error) {
//	    start := time.Now()
//	    res, err := handler(ctx, params)
//	    log.Printf("%s took %v", info.ID(), time.Since(start))
//	    return res, err
//	}
//
// Interceptors run after parameters have been checked and normalized. They can:
//   - Inspect or add parameters before calling handler
//   - Inspect the response or error after calling handler
//   - Short-circuit by returning an error without calling handler
//   - Add values to context using context.WithValue
//
// Parameters added by an interceptor are not checked again; use normalized
// strings.
type Interceptor func(ctx context.Context, info *CallInfo, params Params, handler HandlerFunc) (res any, err error)

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor) Interceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(ctx context.Context, info *CallInfo, params Params, handler HandlerFunc) (any, error) {
		// Chain: i[0] -> i[1] -> ... -> handler
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			current := interceptors[i]
			next := chain
			chain = func(ctx context.Context, params Params) (any, error) {
				return current(ctx, info, params, next)
			}
		}
		return chain(ctx, params)
	}
}
