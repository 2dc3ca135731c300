package notification

import (
	"context"

	"go-sitepass/internal/shared/phone"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogGateway writes messages to the log instead of sending them. Used when
// no SMS provider is configured (local development, CI).
type LogGateway struct {
	logger *zap.Logger
}

func NewLogGateway(logger ...*zap.Logger) *LogGateway {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &LogGateway{logger: l}
}

func (g *LogGateway) Send(_ context.Context, destination string, message string) (Outcome, error) {
	ref := "log-" + uuid.NewString()
	g.logger.Info("sms suppressed",
		zap.String("to", phone.Mask(phone.Normalize(destination))),
		zap.String("message", message),
		zap.String("ref", ref),
	)
	return Outcome{Delivered: true, ProviderRef: ref}, nil
}
