package jobs

import (
	"context"
	"fmt"
	"time"

	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	autoCloseTimeout = 2 * time.Minute
	cleanupTimeout   = time.Minute
	purgeTimeout     = time.Minute
)

type AutoCloser interface {
	AutoClose(ctx context.Context, asOf time.Time) (int, error)
}

type ChallengeCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type OutboxPurger interface {
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}

// Schedules holds cron specs. An empty OutboxPurge disables that sweep.
type Schedules struct {
	AutoClose           string
	VerificationCleanup string
	OutboxPurge         string
}

// Runner holds the periodic sweeps run by the background worker.
type Runner struct {
	closer  AutoCloser
	cleaner ChallengeCleaner
	clock   clock.Clock
	logger  *zap.Logger

	purger    OutboxPurger
	retention time.Duration
}

func NewRunner(closer AutoCloser, cleaner ChallengeCleaner, c clock.Clock, logger ...*zap.Logger) *Runner {
	l := zap.L().Named("jobs")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobs")
	}
	if c == nil {
		c = clock.System()
	}
	return &Runner{closer: closer, cleaner: cleaner, clock: c, logger: l}
}

// WithOutboxPurge enables removal of published outbox events older than
// retention.
func (r *Runner) WithOutboxPurge(p OutboxPurger, retention time.Duration) *Runner {
	r.purger = p
	r.retention = retention
	return r
}

// Schedule registers the sweeps on a UTC cron. A sweep still running when
// its next tick fires is skipped.
func (r *Runner) Schedule(s Schedules) (*cron.Cron, error) {
	cl := cronLogger{r.logger.Sugar()}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.AutoClose, func() { r.RunAutoClose(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule auto-close %q: %w", s.AutoClose, err)
	}
	if _, err := c.AddFunc(s.VerificationCleanup, func() { r.RunVerificationCleanup(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule verification cleanup %q: %w", s.VerificationCleanup, err)
	}
	if r.purger != nil && s.OutboxPurge != "" {
		if _, err := c.AddFunc(s.OutboxPurge, func() { r.RunOutboxPurge(context.Background()) }); err != nil {
			return nil, fmt.Errorf("schedule outbox purge %q: %w", s.OutboxPurge, err)
		}
	}
	return c, nil
}

// runContext tags one sweep with its own id so its logs and outbox rows can
// be traced back to the run.
func (r *Runner) runContext(parent context.Context, job string, timeout time.Duration) (context.Context, context.CancelFunc, *zap.Logger) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("job", job), zap.String("request_id", runID))
	ctx, cancel := context.WithTimeout(parent, timeout)
	ctx = contextutil.WithRequestID(ctx, runID)
	ctx = contextutil.WithLogger(ctx, log)
	return ctx, cancel, log
}

func (r *Runner) RunAutoClose(parent context.Context) int {
	ctx, cancel, log := r.runContext(parent, "attendance.auto_close", autoCloseTimeout)
	defer cancel()

	closed, err := r.closer.AutoClose(ctx, r.clock.Now().UTC())
	if err != nil {
		log.Error("auto-close sweep finished with failures", zap.Int("closed", closed), zap.Error(err))
	}
	return closed
}

func (r *Runner) RunVerificationCleanup(parent context.Context) int64 {
	ctx, cancel, log := r.runContext(parent, "verification.cleanup", cleanupTimeout)
	defer cancel()

	n, err := r.cleaner.CleanupExpired(ctx)
	if err != nil {
		log.Error("verification cleanup failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		log.Info("expired verification challenges removed", zap.Int64("deleted", n))
	}
	return n
}

func (r *Runner) RunOutboxPurge(parent context.Context) int64 {
	ctx, cancel, log := r.runContext(parent, "outbox.purge", purgeTimeout)
	defer cancel()

	n, err := r.purger.PurgeSent(ctx, r.clock.Now().Add(-r.retention))
	if err != nil {
		log.Error("outbox purge failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		log.Info("published outbox events removed", zap.Int64("deleted", n))
	}
	return n
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
