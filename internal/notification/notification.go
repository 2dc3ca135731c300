package notification

import (
	"context"
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

// Outcome describes what the provider accepted. A nil error with
// Delivered=false never happens; failures are always returned as errors.
type Outcome struct {
	Delivered   bool
	ProviderRef string
}

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Gateway interface {
	Send(ctx context.Context, destination string, message string) (Outcome, error)
}

var ErrDeliveryFailed = apperror.New(
	apperror.CodeDependencyFailure,
	"message delivery failed",
	http.StatusBadGateway,
)
