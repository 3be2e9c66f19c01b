package commands

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/notification"
	"study-booking/internal/domain/setting"
	"study-booking/internal/usecase/shared"
)

// NotificationOutcome tells the admin whether a message went out, so an
// undelivered one can be sent by hand.
type NotificationOutcome struct {
	Delivered bool
	Channel   string
	MessageID string
}

type messenger struct {
	notifier shared.Notifier
	reads    func() shared.CommandReads
}

// send never fails the caller: every problem is logged and reported in the
// outcome.
func (m messenger) send(ctx context.Context, kind notification.Kind, to notification.Recipient, values notification.Values) NotificationOutcome {
	template, err := m.reads().SettingValue(ctx, kind.SettingKey())
	if err != nil {
		slog.Warn("falling back to default template", "kind", string(kind), "error", err.Error())
		template = setting.Default(kind.SettingKey())
	}

	msg, err := notification.NewMessage(kind, to, template, values)
	if err != nil {
		slog.Warn("notification not built", "kind", string(kind), "error", err.Error())
		return NotificationOutcome{}
	}

	delivery, err := m.notifier.Send(ctx, msg)
	if err != nil {
		slog.Warn("notification not delivered", "kind", string(kind), "to", to.Email, "error", err.Error())
		return NotificationOutcome{}
	}

	return NotificationOutcome{
		Delivered: true,
		Channel:   delivery.Channel,
		MessageID: delivery.MessageID,
	}
}
