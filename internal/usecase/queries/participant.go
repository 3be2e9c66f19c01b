package queries

import (
	"context"

	"study-booking/internal/infra"
	"study-booking/internal/usecase/shared"
)

type ParticipantReadStore interface {
	FindByToken(ctx context.Context, token string) (*shared.ParticipantSnapshot, error)
	List(ctx context.Context) ([]*ParticipantView, error)
}

type ParticipantQueries interface {
	List(ctx context.Context) ([]*ParticipantView, error)
	GetByToken(ctx context.Context, token string) (*shared.ParticipantSnapshot, error)
}

type participantQueriesImpl struct {
	store ParticipantReadStore
}

func NewParticipantQueries(store ParticipantReadStore) ParticipantQueries {
	return &participantQueriesImpl{store: store}
}

func (q *participantQueriesImpl) List(ctx context.Context) ([]*ParticipantView, error) {
	return q.store.List(ctx)
}

func (q *participantQueriesImpl) GetByToken(ctx context.Context, token string) (*shared.ParticipantSnapshot, error) {
	return participantByToken(ctx, q.store, token)
}

func participantByToken(ctx context.Context, store ParticipantReadStore, token string) (*shared.ParticipantSnapshot, error) {
	p, err := store.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}
