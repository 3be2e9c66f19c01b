package readstore

import (
	"context"

	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParticipantReadQueries interface {
	FindParticipantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Participants, error)
	FindParticipantByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Participants, error)
	ListParticipants(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListParticipantsRow, error)
}

type ParticipantReadStore struct {
	queries ParticipantReadQueries
	db      sqlc.DBTX
}

func NewParticipantReadStore(queries ParticipantReadQueries, db sqlc.DBTX) *ParticipantReadStore {
	return &ParticipantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ParticipantSnapshot, error) {
	row, err := r.queries.FindParticipantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find participant by ID", err)
	}
	return toParticipantSnapshot(row), nil
}

func (r *ParticipantReadStore) FindByToken(ctx context.Context, token string) (*shared.ParticipantSnapshot, error) {
	row, err := r.queries.FindParticipantByToken(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find participant by token", err)
	}
	return toParticipantSnapshot(row), nil
}

func (r *ParticipantReadStore) List(ctx context.Context) ([]*queries.ParticipantView, error) {
	rows, err := r.queries.ListParticipants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants", err)
	}

	views := make([]*queries.ParticipantView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ParticipantView{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			Token:        row.Token,
			BookingCount: row.BookingCount,
			LatestStatus: row.LatestStatus,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func toParticipantSnapshot(row sqlc.Participants) *shared.ParticipantSnapshot {
	return &shared.ParticipantSnapshot{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Token: row.Token,
	}
}
