package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	FieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx that makes every log line carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
