package repository

import (
	"context"

	"study-booking/internal/domain/blockedslot"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedSlotWriteQueries interface {
	CreateBlockedSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedSlotParams) error
	DeleteBlockedSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BlockedSlotRepository struct {
	queries BlockedSlotWriteQueries
	db      sqlc.DBTX
}

func NewBlockedSlotRepository(queries BlockedSlotWriteQueries, db sqlc.DBTX) *BlockedSlotRepository {
	return &BlockedSlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedSlotRepository) Create(ctx context.Context, tx sqlc.DBTX, b *blockedslot.BlockedSlot) error {
	slot := b.Interval()
	params := sqlc.CreateBlockedSlotParams{
		ID:        b.ID(),
		StartTime: pgconv.TimeToPgtype(slot.Start.UTC()),
		EndTime:   pgconv.TimeToPgtype(slot.End.UTC()),
		Reason:    b.Reason(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}

	if err := r.queries.CreateBlockedSlot(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create blocked slot", err)
	}
	return nil
}

func (r *BlockedSlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteBlockedSlot(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete blocked slot", err)
	}
	return affected > 0, nil
}
