// Package logctx carries a zerolog logger through context.Context so that
// benchmark units can log with fields added by their callers.
//
//	ctx = logctx.WithStr(ctx, "kind", unit.Kind)
//	log := logctx.FromContext(ctx)
package logctx

import (
	"context"

	"github.com/eunmann/twain-bench/pkg/logging"
	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from the context. Without one it falls
// back to the process logger from pkg/logging, so it never returns a
// disabled zero-value logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
			return logger
		}
	}
	return *logging.L()
}

// WithStr returns a new context whose logger carries an extra string field.
func WithStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, logger)
}
