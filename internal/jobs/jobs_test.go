package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type closerFunc func(ctx context.Context, asOf time.Time) (int, error)

func (f closerFunc) AutoClose(ctx context.Context, asOf time.Time) (int, error) { return f(ctx, asOf) }

type cleanerFunc func(ctx context.Context) (int64, error)

func (f cleanerFunc) CleanupExpired(ctx context.Context) (int64, error) { return f(ctx) }

type purgerFunc func(ctx context.Context, before time.Time) (int64, error)

func (f purgerFunc) PurgeSent(ctx context.Context, before time.Time) (int64, error) { return f(ctx, before) }

func TestRunner_RunAutoClose(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.FixedZone("KST", 9*60*60))

	var gotAsOf time.Time
	var gotRunID string
	closer := closerFunc(func(ctx context.Context, asOf time.Time) (int, error) {
		gotAsOf = asOf
		gotRunID = contextutil.GetRequestID(ctx)
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return 3, errors.New("one record failed")
	})

	r := NewRunner(closer, nil, clock.NewFixed(now), zap.NewNop())
	assert.Equal(t, 3, r.RunAutoClose(context.Background()))
	assert.True(t, gotAsOf.Equal(now))
	assert.Equal(t, time.UTC, gotAsOf.Location())
	assert.NotEmpty(t, gotRunID)
}

func TestRunner_RunVerificationCleanup(t *testing.T) {
	r := NewRunner(nil, cleanerFunc(func(ctx context.Context) (int64, error) { return 7, nil }), nil, zap.NewNop())
	assert.Equal(t, int64(7), r.RunVerificationCleanup(context.Background()))

	r = NewRunner(nil, cleanerFunc(func(ctx context.Context) (int64, error) { return 0, errors.New("db down") }), nil, zap.NewNop())
	assert.Equal(t, int64(0), r.RunVerificationCleanup(context.Background()))
}

func TestRunner_Schedule(t *testing.T) {
	r := NewRunner(nil, nil, nil, zap.NewNop())

	c, err := r.Schedule(Schedules{AutoClose: "@every 5m", VerificationCleanup: "@every 1h"})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)

	_, err = r.Schedule(Schedules{AutoClose: "every five minutes", VerificationCleanup: "@every 1h"})
	assert.Error(t, err)

	r.WithOutboxPurge(purgerFunc(func(context.Context, time.Time) (int64, error) { return 0, nil }), time.Hour)
	c, err = r.Schedule(Schedules{AutoClose: "@every 5m", VerificationCleanup: "@every 1h", OutboxPurge: "@daily"})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 3)
}

func TestRunner_RunOutboxPurge(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	var cutoff time.Time
	r := NewRunner(nil, nil, clock.NewFixed(now), zap.NewNop()).
		WithOutboxPurge(purgerFunc(func(_ context.Context, before time.Time) (int64, error) {
			cutoff = before
			return 4, nil
		}), 72*time.Hour)

	assert.Equal(t, int64(4), r.RunOutboxPurge(context.Background()))
	assert.True(t, cutoff.Equal(now.Add(-72*time.Hour)))

	r.WithOutboxPurge(purgerFunc(func(context.Context, time.Time) (int64, error) {
		return 0, errors.New("db down")
	}), time.Hour)
	assert.Equal(t, int64(0), r.RunOutboxPurge(context.Background()))
}
