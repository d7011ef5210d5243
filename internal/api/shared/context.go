package shared

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the type of request context keys set by this package.
type ContextKey string

// TraceIDKey holds the request's trace ID.
const TraceIDKey ContextKey = "traceID"

// TraceIDLength is the length of a trace ID in hex characters.
const TraceIDLength = 32

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, newTraceID())
}

// WithTraceID stores traceID in the context unchanged.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context, or "" if none is set.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// IsValidTraceID reports whether s has the shape of IDs produced here:
// 32 lowercase or uppercase hex characters.
func IsValidTraceID(s string) bool {
	if len(s) != TraceIDLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// newTraceID returns a random UUID as 32 hex characters. If the random
// source fails it derives one from the clock instead.
func newTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"fallback", "time-based generation")
		id = fallbackTraceUUID(time.Now())
	}
	return hex.EncodeToString(id[:])
}

func fallbackTraceUUID(now time.Time) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(now.Format(time.RFC3339Nano)))
}
