package setting

import (
	"time"

	"study-booking/internal/pkg/errs"
)

type Key string

const (
	KeyInvitationBody   Key = "email_body"
	KeyConfirmationBody Key = "confirmation_body"
	KeyCancellationBody Key = "cancellation_body"
	KeyConsent          Key = "consent_html"
)

const MaxValueLength = 20000

var (
	ErrUnknownKey   = errs.New("unknown setting key")
	ErrValueTooLong = errs.New("setting value exceeds maximum length")
)

var keys = []Key{KeyInvitationBody, KeyConfirmationBody, KeyCancellationBody, KeyConsent}

func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

func ParseKey(s string) (Key, error) {
	for _, k := range keys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownKey
}

func (k Key) String() string { return string(k) }

type Setting struct {
	key       Key
	value     string
	updatedAt time.Time
}

func NewSetting(key Key, value string, now time.Time) (*Setting, error) {
	if _, err := ParseKey(string(key)); err != nil {
		return nil, err
	}
	if len(value) > MaxValueLength {
		return nil, ErrValueTooLong
	}
	return &Setting{key: key, value: value, updatedAt: now}, nil
}

func (s *Setting) Key() Key             { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

// Default returns the value used when the key has never been stored.
func Default(key Key) string {
	return defaults[key]
}

var defaults = map[Key]string{
	KeyInvitationBody: `Hi {{name}},

Thank you for volunteering to participate in our user study!

Please open our availability calendar and pick up to three time slots that work for you:

{{link}}

Before your session, please read the consent form: {{consent_link}}`,
	KeyConfirmationBody: `Hi {{name}},

Your user study session has been confirmed:

{{slot}}

A calendar invitation with the study details will follow shortly.
If you need to reschedule, reply to this email.

Thank you for participating in our research!`,
	KeyCancellationBody: `Hi {{name}},

Your user study session on {{slot}} has been cancelled.

You can pick a new time here: {{link}}`,
	KeyConsent: `<h2>Consent Form</h2>
<p>Please read this consent carefully before booking. You agree to participate voluntarily. Contact us with any questions.</p>`,
}
