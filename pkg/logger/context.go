package logger

import "context"

type requestIDKey struct{}

// ContextWithRequestID stores the request ID in ctx
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored in ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns l annotated with the request ID found in ctx
func (l *Logger) FromContext(ctx context.Context) *Logger {
	return l.WithRequestID(RequestIDFromContext(ctx))
}
