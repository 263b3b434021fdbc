package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/broady/restbind"
)

// LoggingInterceptor creates an interceptor that logs bound calls using slog.
// It logs the start and end of each call, including duration and error code.
func LoggingInterceptor(logger *slog.Logger) restbind.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, info *restbind.CallInfo, params restbind.Params, handler restbind.HandlerFunc) (any, error) {
		start := time.Now()

		logger.InfoContext(ctx, "call started",
			slog.String("call", info.ID()),
			slog.String("method", info.Operation.HTTPMethod),
		)

		res, err := handler(ctx, params)
		duration := time.Since(start)

		if err != nil {
			logger.ErrorContext(ctx, "call failed",
				slog.String("call", info.ID()),
				slog.Duration("duration", duration),
				slog.String("code", string(restbind.ErrorCodeOf(err))),
				slog.Any("error", err),
			)
		} else {
			logger.InfoContext(ctx, "call completed",
				slog.String("call", info.ID()),
				slog.Duration("duration", duration),
			)
		}

		return res, err
	}
}
