package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-sitepass/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	l.Log(ctx, AuditLog{Action: "WORKER_APPROVED", ActorID: "admin-1", TargetID: "worker-1"})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "WORKER_APPROVED", fields["action"])
	assert.Equal(t, "rid-9", fields["request_id"])
	assert.Equal(t, "2026-01-02T03:04:05Z", fields["timestamp"])
	assert.Equal(t, "audit", entries[0].LoggerName)
	assert.NotContains(t, fields, "actor_role")
}

func TestStdoutAuditLogger_ActorFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithActor(context.Background(), contextutil.Actor{WorkerID: "admin-2", CompanyID: "c-1", Role: "SITE_ADMIN"})
	l.Log(ctx, AuditLog{Action: "WORKER_BLOCKED", TargetID: "worker-3"})

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "admin-2", fields["actor_id"])
	assert.Equal(t, "SITE_ADMIN", fields["actor_role"])
	assert.Equal(t, "c-1", fields["company_id"])
}
