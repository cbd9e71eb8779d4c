package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	generatorKey contextKey = "generator"
	sourceIDKey  contextKey = "source_id"
)

// WithRunID annotates context with the identifier of one generator invocation.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithGenerator annotates context with the generator name (beats, captions).
func WithGenerator(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, generatorKey, name)
}

// GeneratorFromContext returns the generator name if present.
func GeneratorFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(generatorKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithSourceID annotates context with the audio source identifier being analyzed.
func WithSourceID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceIDKey, id)
}

// SourceIDFromContext returns the audio source identifier if present.
func SourceIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(sourceIDKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
