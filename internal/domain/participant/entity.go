package participant

import (
	"time"

	"github.com/google/uuid"
)

// Participant is immutable once registered.
type Participant struct {
	id        uuid.UUID
	name      Name
	email     Email
	token     AccessToken
	createdAt time.Time
}

func NewParticipant(name, email string, token AccessToken, now time.Time) (*Participant, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	if token.value == "" {
		return nil, ErrInvalidToken
	}

	return &Participant{
		id:        uuid.New(),
		name:      n,
		email:     e,
		token:     token,
		createdAt: now,
	}, nil
}

func (p *Participant) ID() uuid.UUID        { return p.id }
func (p *Participant) Name() Name           { return p.name }
func (p *Participant) Email() Email         { return p.email }
func (p *Participant) Token() AccessToken   { return p.token }
func (p *Participant) CreatedAt() time.Time { return p.createdAt }
