package logging

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	fieldKey     contextKey = "field"
)

// WithSessionID adds an editing session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithField adds the name of the form field being edited to the context.
func WithField(ctx context.Context, field string) context.Context {
	return context.WithValue(ctx, fieldKey, field)
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not present.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetField retrieves the field name from the context.
// Returns empty string if not present.
func GetField(ctx context.Context) string {
	if f, ok := ctx.Value(fieldKey).(string); ok {
		return f
	}
	return ""
}
