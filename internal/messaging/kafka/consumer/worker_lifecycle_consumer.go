package consumer

import (
	"context"
	"encoding/json"

	"go-sitepass/internal/events"
	"go-sitepass/internal/notification"
	"go-sitepass/internal/shared/phone"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeWorkerLifecycle texts workers about enrollment outcomes. Messages for
// statuses nobody needs to hear about are committed without sending.
func ConsumeWorkerLifecycle(
	ctx context.Context,
	reader MessageReader,
	sender notification.Gateway,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.worker_lifecycle")
	log.Info("worker lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("worker lifecycle consumer stopped")
				return
			}
			log.Error("fetch worker lifecycle message failed", zap.Error(err))
			continue
		}

		if err := HandleWorkerStatusChanged(ctx, msg, sender, log); err != nil {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit worker lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleWorkerStatusChanged returns an error only when the message should be
// redelivered. Undecodable payloads are logged and dropped.
func HandleWorkerStatusChanged(ctx context.Context, msg kafkago.Message, sender notification.Gateway, log *zap.Logger) error {
	var event events.WorkerStatusChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode worker.status_changed event failed", zap.Error(err))
		return nil
	}

	text := notification.StatusChangedMessage(event.From, event.To)
	if text == "" {
		return nil
	}

	if _, err := sender.Send(ctx, event.Phone, text); err != nil {
		log.Error("status change notification failed",
			zap.String("request_id", event.RequestID),
			zap.String("worker_id", event.WorkerID),
			zap.String("phone", phone.Mask(event.Phone)),
			zap.String("status", event.To),
			zap.Error(err),
		)
		return err
	}

	log.Info("status change notification sent",
		zap.String("request_id", event.RequestID),
		zap.String("worker_id", event.WorkerID),
		zap.String("status", event.To),
	)
	return nil
}
