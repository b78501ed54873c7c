// Package shared contains helpers used across the API handlers: context
// keys, trace IDs, and JSON response plumbing.
package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// UserIDContextKey is the context key for the authenticated user ID.
	UserIDContextKey ContextKey = "userID"

	// DisplayNameContextKey is the context key for the authenticated
	// user's display name from the device token.
	DisplayNameContextKey ContextKey = "displayName"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// UserIDFromContext extracts the authenticated user ID from the context.
// Returns the user ID and a boolean indicating if it was found.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(int64)
	return userID, ok
}

// DisplayNameFromContext extracts the authenticated user's display name
// from the context. Returns an empty string if it was not set.
func DisplayNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(DisplayNameContextKey).(string)
	return name
}
