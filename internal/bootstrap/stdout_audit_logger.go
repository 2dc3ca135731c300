package bootstrap

import (
	"context"
	"time"

	"go-sitepass/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l, now: time.Now}
}

// Log writes one structured line per entry. The actor falls back to the
// authenticated worker on ctx.
func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	actorID := entry.ActorID
	if actorID == "" {
		actorID = md.WorkerID
	}

	fields := []zap.Field{
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("request_id", md.RequestID),
		zap.String("action", entry.Action),
		zap.String("actor_id", actorID),
		zap.String("target_id", entry.TargetID),
	}
	if md.Role != "" {
		fields = append(fields, zap.String("actor_role", md.Role), zap.String("company_id", md.CompanyID))
	}
	if entry.Message != "" {
		fields = append(fields, zap.String("message", entry.Message))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info("audit event", fields...)
}
