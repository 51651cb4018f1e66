package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyFacilityID contextKey = "facility_id"
	ContextKeyLogger     contextKey = "logger"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithFacilityID adds a facility ID to the context
func WithFacilityID(ctx context.Context, facilityID string) context.Context {
	return context.WithValue(ctx, ContextKeyFacilityID, facilityID)
}

// FacilityIDFromContext extracts the facility ID from context
func FacilityIDFromContext(ctx context.Context) string {
	if facilityID, ok := ctx.Value(ContextKeyFacilityID).(string); ok {
		return facilityID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
