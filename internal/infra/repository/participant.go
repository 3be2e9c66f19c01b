package repository

import (
	"context"

	"study-booking/internal/domain/participant"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
)

type ParticipantWriteQueries interface {
	CreateParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParticipantParams) error
}

type ParticipantRepository struct {
	queries ParticipantWriteQueries
	db      sqlc.DBTX
}

func NewParticipantRepository(queries ParticipantWriteQueries, db sqlc.DBTX) *ParticipantRepository {
	return &ParticipantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, tx sqlc.DBTX, p *participant.Participant) error {
	params := sqlc.CreateParticipantParams{
		ID:        p.ID(),
		Name:      p.Name().String(),
		Email:     p.Email().String(),
		Token:     p.Token().String(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}

	if err := r.queries.CreateParticipant(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create participant", err)
	}
	return nil
}
