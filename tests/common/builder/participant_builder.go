//go:build unit || e2e

package builder

import (
	"time"

	"study-booking/internal/domain/participant"
	reqdto "study-booking/internal/handler/dto/request"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ParticipantBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Token     string
	CreatedAt time.Time
}

func NewParticipantBuilder() *ParticipantBuilder {
	token, err := participant.NewAccessToken()
	if err != nil {
		panic(err)
	}
	return &ParticipantBuilder{
		ID:        uuid.New(),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Token:     token.String(),
		CreatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (p *ParticipantBuilder) With(mutate func(*ParticipantBuilder)) *ParticipantBuilder {
	mutate(p)
	return p
}

func (p *ParticipantBuilder) WithEmail(email string) *ParticipantBuilder {
	p.Email = email
	return p
}

func (p *ParticipantBuilder) WithName(name string) *ParticipantBuilder {
	p.Name = name
	return p
}

// Build methods
func (p *ParticipantBuilder) BuildDomain() (*participant.Participant, error) {
	token, err := participant.ParseAccessToken(p.Token)
	if err != nil {
		return nil, err
	}
	return participant.NewParticipant(p.Name, p.Email, token, p.CreatedAt)
}

func (p *ParticipantBuilder) BuildRegisterRequestDTO() reqdto.RegisterParticipantRequest {
	return reqdto.RegisterParticipantRequest{Name: p.Name, Email: p.Email}
}

func (p *ParticipantBuilder) BuildSnapshot() *shared.ParticipantSnapshot {
	return &shared.ParticipantSnapshot{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Token: p.Token,
	}
}

func (p *ParticipantBuilder) BuildView() *queries.ParticipantView {
	return &queries.ParticipantView{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Token:     p.Token,
		CreatedAt: p.CreatedAt,
	}
}

func (p *ParticipantBuilder) BuildInfra() sqlc.Participants {
	return sqlc.Participants{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Token:     p.Token,
		CreatedAt: pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}
