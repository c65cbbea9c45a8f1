// Package utils provides general-purpose helper utilities used by the
// qry-share server: type-safe context keys, JSON response writing and
// trace identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the HTTP layer stores the trace
// identifier of the current request.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0190c1f2-...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the request trace identifier and whether one
// was present with the expected string type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
