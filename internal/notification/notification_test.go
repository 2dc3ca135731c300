package notification

import (
	"context"
	"errors"
	"testing"

	"go-sitepass/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type fakeCreator struct {
	got *twilioApi.CreateMessageParams
	err error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioGateway_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := &fakeCreator{}
		g := newTwilioGateway(api, "+15005550006", zap.NewNop())

		out, err := g.Send(context.Background(), "010-1234-5678", "hello")
		assert.NoError(t, err)
		assert.True(t, out.Delivered)
		assert.Equal(t, "SM123", out.ProviderRef)
		assert.Equal(t, "+821012345678", *api.got.To)
		assert.Equal(t, "+15005550006", *api.got.From)
		assert.Equal(t, "hello", *api.got.Body)
	})

	t.Run("provider rejection", func(t *testing.T) {
		api := &fakeCreator{err: &twilioclient.TwilioRestError{Status: 400, Code: 21211, Message: "invalid To"}}
		g := newTwilioGateway(api, "+15005550006", zap.NewNop())

		_, err := g.Send(context.Background(), "01012345678", "hello")
		assert.ErrorIs(t, err, ErrDeliveryFailed)
	})

	t.Run("network error", func(t *testing.T) {
		api := &fakeCreator{err: errors.New("dial tcp: timeout")}
		g := newTwilioGateway(api, "+15005550006", zap.NewNop())

		_, err := g.Send(context.Background(), "01012345678", "hello")
		assert.Equal(t, apperror.CodeDependencyFailure, apperror.ToHTTP(err).Code)
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		api := &fakeCreator{}
		g := newTwilioGateway(api, "+15005550006", zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Send(ctx, "01012345678", "hello")
		assert.Error(t, err)
		assert.Nil(t, api.got)
	})
}

func TestLogGateway_Send(t *testing.T) {
	out, err := NewLogGateway(zap.NewNop()).Send(context.Background(), "01012345678", "hi")
	assert.NoError(t, err)
	assert.True(t, out.Delivered)
	assert.Contains(t, out.ProviderRef, "log-")
}

func TestMessages(t *testing.T) {
	assert.Contains(t, InviteMessage("Hanul", "https://x/invite/abc"), "(valid for 7 days)")
	assert.Contains(t, VerificationCodeMessage("123456"), "123456")
	assert.NotEmpty(t, StatusChangedMessage("REQUESTED", "ACTIVE"))
	assert.NotEmpty(t, StatusChangedMessage("ACTIVE", "BLOCKED"))
	assert.Empty(t, StatusChangedMessage("BLOCKED", "ACTIVE"))
	assert.Empty(t, StatusChangedMessage("ACTIVE", "INACTIVE"))
}
