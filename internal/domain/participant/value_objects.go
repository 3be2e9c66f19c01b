package participant

import (
	"crypto/rand"
	"encoding/base64"
	"net/mail"
	"strings"

	"study-booking/internal/pkg/errs"
)

const (
	MaxNameLength = 200
	tokenBytes    = 16
)

var (
	ErrEmptyName     = errs.New("name cannot be empty")
	ErrNameTooLong   = errs.New("name exceeds maximum length")
	ErrInvalidEmail  = errs.New("invalid email address")
	ErrInvalidToken  = errs.New("invalid access token")
	ErrTokenGenerate = errs.New("failed to generate access token")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string { return n.value }

// AccessToken is the unguessable credential embedded in a participant's link.
type AccessToken struct {
	value string
}

func NewAccessToken() (AccessToken, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return AccessToken{}, errs.Mark(err, ErrTokenGenerate)
	}
	return AccessToken{value: base64.RawURLEncoding.EncodeToString(buf)}, nil
}

// ParseAccessToken rejects anything that could not have come from NewAccessToken.
func ParseAccessToken(s string) (AccessToken, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil || len(decoded) != tokenBytes {
		return AccessToken{}, ErrInvalidToken
	}
	return AccessToken{value: s}, nil
}

func (t AccessToken) String() string { return t.value }
