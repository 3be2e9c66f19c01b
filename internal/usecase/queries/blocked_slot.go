package queries

import (
	"context"
)

type BlockedSlotReadStore interface {
	List(ctx context.Context) ([]*BlockedSlotView, error)
}

type BlockedSlotQueries interface {
	List(ctx context.Context) ([]*BlockedSlotView, error)
}

type blockedSlotQueriesImpl struct {
	store BlockedSlotReadStore
}

func NewBlockedSlotQueries(store BlockedSlotReadStore) BlockedSlotQueries {
	return &blockedSlotQueriesImpl{store: store}
}

func (q *blockedSlotQueriesImpl) List(ctx context.Context) ([]*BlockedSlotView, error) {
	return q.store.List(ctx)
}
