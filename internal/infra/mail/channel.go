package mail

import (
	"context"
	"net/mail"

	"study-booking/internal/domain/notification"
)

// Channel is one way of getting a message out. Send returns the provider
// message id.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg notification.Message) (string, error)
}

func formatAddress(to notification.Recipient) string {
	if to.Name == "" {
		return to.Email
	}
	return (&mail.Address{Name: to.Name, Address: to.Email}).String()
}
