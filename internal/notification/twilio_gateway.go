package notification

import (
	"context"
	"errors"

	"go-sitepass/internal/shared/phone"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioGateway struct {
	api    messageCreator
	from   string
	logger *zap.Logger
}

func NewTwilioGateway(accountSID, authToken, from string, logger ...*zap.Logger) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newTwilioGateway(client.Api, from, logger...)
}

func newTwilioGateway(api messageCreator, from string, logger ...*zap.Logger) *TwilioGateway {
	l := zap.L().Named("notification.twilio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.twilio")
	}
	return &TwilioGateway{api: api, from: from, logger: l}
}

// Send delivers an SMS to a normalized domestic number.
func (g *TwilioGateway) Send(ctx context.Context, destination string, message string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, ErrDeliveryFailed.WithCause(err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone.E164(phone.Normalize(destination)))
	params.SetFrom(g.from)
	params.SetBody(message)

	resp, err := g.api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			g.logger.Warn("twilio rejected message",
				zap.Int("twilio_status", restErr.Status),
				zap.Int("twilio_code", restErr.Code),
				zap.String("to", phone.Mask(phone.Normalize(destination))),
			)
		} else {
			g.logger.Error("twilio send failed", zap.Error(err))
		}
		return Outcome{}, ErrDeliveryFailed.WithCause(err)
	}

	out := Outcome{Delivered: true}
	if resp != nil && resp.Sid != nil {
		out.ProviderRef = *resp.Sid
	}
	return out, nil
}
