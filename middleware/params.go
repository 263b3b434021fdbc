package middleware

import (
	"context"
	"maps"

	"github.com/broady/restbind"
)

// DefaultParams returns an interceptor that fills in parameter values the
// caller did not set. A value is only added when the operation, or the service
// as a whole, declares the parameter, so one set of defaults can be shared by
// every service:
//
//	svc.WithInterceptor(middleware.DefaultParams(map[string]string{
//	    "quotaUser":   "batch-42",
//	    "prettyPrint": "false",
//	}))
//
// Values are added as normalized strings and are not checked against the
// parameter's declared type.
func DefaultParams(values map[string]string) restbind.Interceptor {
	defaults := maps.Clone(values)

	return func(ctx context.Context, info *restbind.CallInfo, params restbind.Params, handler restbind.HandlerFunc) (any, error) {
		var merged restbind.Params
		for name, v := range defaults {
			if _, set := params[name]; set {
				continue
			}
			p, ok := info.Parameter(name)
			if !ok || p.Location != restbind.LocationQuery {
				continue
			}
			if merged == nil {
				merged = maps.Clone(params)
				if merged == nil {
					merged = restbind.Params{}
				}
			}
			if p.Repeated {
				merged[name] = []string{v}
			} else {
				merged[name] = v
			}
		}
		if merged == nil {
			return handler(ctx, params)
		}
		return handler(ctx, merged)
	}
}

// QuotaUser attributes every call to user for per-user quota accounting.
func QuotaUser(user string) restbind.Interceptor {
	return DefaultParams(map[string]string{"quotaUser": user})
}

// APIKey sends key with every call that does not carry one already.
func APIKey(key string) restbind.Interceptor {
	return DefaultParams(map[string]string{"key": key})
}
