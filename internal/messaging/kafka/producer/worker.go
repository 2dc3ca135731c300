package producer

import (
	"context"
	"time"

	"go-sitepass/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize           = 50
	defaultPollInterval = 3 * time.Second
)

// ProcessOutboxEvents publishes outbox rows until ctx is cancelled. A tick
// that finds a full batch keeps draining before it waits for the next one.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	log := logger.Named("outbox.publisher")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox publisher started", zap.Duration("poll_interval", pollInterval))
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			drain(ctx, repo, writer, log)
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for ctx.Err() == nil {
		listed, err := processBatch(ctx, repo, writer, log)
		if err != nil {
			log.Error("list pending outbox events failed", zap.Error(err))
			return
		}
		if listed < batchSize {
			return
		}
	}
}

// ProcessPending publishes one batch and returns how many events were sent.
// A failed publish is recorded on the row and retried on a later poll.
func ProcessPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	return publishAll(ctx, repo, writer, logger, events), nil
}

func processBatch(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	publishAll(ctx, repo, writer, log, events)
	return len(events), nil
}

func publishAll(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger, events []kafka.OutboxEvent) int {
	sent := 0
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("aggregate_id", event.AggregateID),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			log.Warn("publish outbox event failed",
				append(fields, zap.Int("retry_count", event.RetryCount), zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("record outbox failure", append(fields, zap.Error(markErr))...)
			}
			continue
		}
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// published but still pending: the consumer sees it again
			log.Error("mark outbox event sent", append(fields, zap.Error(err))...)
			continue
		}

		sent++
		log.Debug("outbox event sent", append(fields, zap.String("request_id", event.RequestID))...)
	}
	if len(events) > 0 {
		log.Info("outbox batch published", zap.Int("listed", len(events)), zap.Int("sent", sent))
	}
	return sent
}
