package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (r *recordingAudit) Log(_ context.Context, e AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	audit := &recordingAudit{}
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancelCause(context.Background())
	time.AfterFunc(50*time.Millisecond, func() { cancel(errors.New("signal terminated")) })

	assert.NoError(t, Serve(ctx, srv, time.Second, audit))
	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
		assert.Equal(t, "signal terminated", audit.entries[0].Meta["reason"])
	}
}

func TestServe_ListenFailure(t *testing.T) {
	audit := &recordingAudit{}
	srv := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}

	err := Serve(context.Background(), srv, time.Second, audit)
	assert.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestServerConfig_Server(t *testing.T) {
	srv := ServerConfig{Port: "8080", ReadTimeout: 5 * time.Second}.server(http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)
}
