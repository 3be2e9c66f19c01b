package mail

import (
	"context"
	"log/slog"
	"time"

	"study-booking/internal/domain/notification"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"
)

// ErrUndelivered means no channel accepted the message. The message is in the
// log so it can be sent by hand.
var ErrUndelivered = errs.New("message could not be delivered")

// Dispatcher tries each channel in order until one accepts the message.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	logger   *slog.Logger
}

func NewDispatcher(channels []Channel, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		timeout:  timeout,
		logger:   logger,
	}
}

// NewDispatcherFromConfig wires Resend first and SMTP second, skipping
// channels without credentials.
func NewDispatcherFromConfig(cfg config.MailConfig, logger *slog.Logger) *Dispatcher {
	var channels []Channel
	if cfg.ResendAPIKey != "" {
		channels = append(channels, NewResendChannel(cfg.ResendAPIKey, cfg.From, logger))
	}
	if cfg.SMTPHost != "" {
		channels = append(channels, NewSMTPChannel(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
			Timeout:  cfg.Timeout,
		}))
	}
	if len(channels) == 0 {
		logger.Warn("no mail channel configured; messages will only be logged")
	}
	return NewDispatcher(channels, cfg.Timeout, logger)
}

func (d *Dispatcher) Send(ctx context.Context, msg notification.Message) (notification.Delivery, error) {
	for _, ch := range d.channels {
		callCtx, cancel := context.WithTimeout(ctx, d.timeout)
		id, err := ch.Send(callCtx, msg)
		cancel()
		if err == nil {
			d.logger.Info("mail sent",
				"channel", ch.Name(),
				"kind", string(msg.Kind),
				"to", msg.To.Email,
				"message_id", id)
			return notification.Delivery{Channel: ch.Name(), MessageID: id}, nil
		}

		d.logger.Warn("mail channel failed",
			"channel", ch.Name(),
			"kind", string(msg.Kind),
			"to", msg.To.Email,
			"error", err.Error())
	}

	d.logger.Warn("mail undelivered, send manually",
		"kind", string(msg.Kind),
		"to", msg.To.Email,
		"subject", msg.Subject,
		"body", msg.Body)
	return notification.Delivery{}, ErrUndelivered
}
