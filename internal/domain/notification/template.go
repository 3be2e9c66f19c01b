package notification

import (
	"fmt"
	"strings"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/setting"
	"study-booking/internal/pkg/errs"
)

type Kind string

const (
	KindInvitation   Kind = "invitation"
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
)

var ErrMissingRecipient = errs.New("notification recipient email is required")

func (k Kind) Subject() string {
	switch k {
	case KindInvitation:
		return "User Study Invitation - Pick Your Time Slot"
	case KindConfirmation:
		return "User Study Booking Confirmed"
	case KindCancellation:
		return "User Study Booking Cancelled"
	default:
		return "User Study"
	}
}

// SettingKey names the editable body used for this kind of message.
func (k Kind) SettingKey() setting.Key {
	switch k {
	case KindConfirmation:
		return setting.KeyConfirmationBody
	case KindCancellation:
		return setting.KeyCancellationBody
	default:
		return setting.KeyInvitationBody
	}
}

// Placeholders are the only substitutions templates support.
const (
	PlaceholderName        = "{{name}}"
	PlaceholderLink        = "{{link}}"
	PlaceholderSlot        = "{{slot}}"
	PlaceholderConsentLink = "{{consent_link}}"
)

type Values struct {
	Name        string
	Link        string
	Slot        string
	ConsentLink string
}

// Render substitutes the known placeholders. Anything else in braces is kept
// as written.
func Render(template string, v Values) string {
	return strings.NewReplacer(
		PlaceholderName, v.Name,
		PlaceholderLink, v.Link,
		PlaceholderSlot, v.Slot,
		PlaceholderConsentLink, v.ConsentLink,
	).Replace(template)
}

type Recipient struct {
	Name  string
	Email string
}

type Message struct {
	Kind    Kind
	To      Recipient
	Subject string
	Body    string
}

func NewMessage(kind Kind, to Recipient, template string, v Values) (Message, error) {
	if strings.TrimSpace(to.Email) == "" {
		return Message{}, ErrMissingRecipient
	}
	return Message{
		Kind:    kind,
		To:      to,
		Subject: kind.Subject(),
		Body:    Render(template, v),
	}, nil
}

// Delivery records which channel accepted a message.
type Delivery struct {
	Channel   string
	MessageID string
}

// FormatSlot renders a slot the way participants read it, e.g.
// "Tue Mar 3, 10:00 AM - 11:00 AM (America/Toronto)".
func FormatSlot(slot availability.Interval, loc *time.Location) string {
	start := slot.Start.In(loc)
	end := slot.End.In(loc)
	return fmt.Sprintf("%s - %s (%s)", start.Format("Mon Jan 2, 3:04 PM"), end.Format("3:04 PM"), loc.String())
}
