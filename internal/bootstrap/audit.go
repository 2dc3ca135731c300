package bootstrap

import "context"

type AuditLog struct {
	Action   string
	ActorID  string
	TargetID string
	Message  string
	Meta     map[string]any
}

// AuditLogger records security relevant actions: admin status transitions
// and server lifecycle events.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type NopAuditLogger struct{}

func (NopAuditLogger) Log(context.Context, AuditLog) {}
