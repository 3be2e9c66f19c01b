package mail

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/notification"
	"study-booking/internal/pkg/errs"

	"github.com/resend/resend-go/v2"
)

// ResendChannel sends through the Resend HTTP API.
type ResendChannel struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

func NewResendChannel(apiKey, from string, logger *slog.Logger) *ResendChannel {
	return NewResendChannelWithClient(resend.NewClient(apiKey), from, logger)
}

func NewResendChannelWithClient(client *resend.Client, from string, logger *slog.Logger) *ResendChannel {
	return &ResendChannel{
		client: client,
		from:   from,
		logger: logger,
	}
}

func (c *ResendChannel) Name() string { return "resend" }

func (c *ResendChannel) Send(ctx context.Context, msg notification.Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{formatAddress(msg.To)},
		Subject: msg.Subject,
		Text:    msg.Body,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", errs.Wrap(err, "resend send failed")
	}

	c.logger.Debug("resend accepted the message", "message_id", sent.Id, "kind", msg.Kind)
	return sent.Id, nil
}
