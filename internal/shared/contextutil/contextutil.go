package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
	actorKey     contextKey = "actor"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Actor Helpers ---

// Actor is the authenticated caller as resolved from the access token.
type Actor struct {
	WorkerID  string
	CompanyID string
	SiteID    string
	TeamID    string
	Role      string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func GetActor(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}

// GetWorkerID is the authenticated worker, or "" for anonymous calls and
// background jobs.
func GetWorkerID(ctx context.Context) string {
	a, _ := GetActor(ctx)
	return a.WorkerID
}

// --- Logger Helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request scoped logger, falling back to defaultLogger
// and finally to a no-op logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// Metadata is what audit and event records carry about the call that
// produced them.
type Metadata struct {
	RequestID string
	WorkerID  string
	Role      string
	CompanyID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	a, _ := GetActor(ctx)
	return Metadata{
		RequestID: GetRequestID(ctx),
		WorkerID:  a.WorkerID,
		Role:      a.Role,
		CompanyID: a.CompanyID,
	}
}
