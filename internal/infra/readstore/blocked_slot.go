package readstore

import (
	"context"

	"study-booking/internal/domain/availability"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
	"study-booking/internal/usecase/queries"
)

type BlockedSlotReadQueries interface {
	ListBlockedSlots(ctx context.Context, db sqlc.DBTX) ([]sqlc.BlockedSlots, error)
	ListBlockedSlotsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedSlotsOverlappingParams) ([]sqlc.BlockedSlots, error)
}

type BlockedSlotReadStore struct {
	queries BlockedSlotReadQueries
	db      sqlc.DBTX
}

func NewBlockedSlotReadStore(queries BlockedSlotReadQueries, db sqlc.DBTX) *BlockedSlotReadStore {
	return &BlockedSlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedSlotReadStore) List(ctx context.Context) ([]*queries.BlockedSlotView, error) {
	rows, err := r.queries.ListBlockedSlots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}

	views := make([]*queries.BlockedSlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BlockedSlotView{
			ID:        row.ID,
			Start:     pgconv.TimeFromPgtype(row.StartTime),
			End:       pgconv.TimeFromPgtype(row.EndTime),
			Reason:    row.Reason,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

// Overlapping returns the blocked ranges intersecting window.
func (r *BlockedSlotReadStore) Overlapping(ctx context.Context, window availability.Interval) ([]availability.Interval, error) {
	rows, err := r.queries.ListBlockedSlotsOverlapping(ctx, r.db, sqlc.ListBlockedSlotsOverlappingParams{
		RangeStart: pgconv.TimeToPgtype(window.Start.UTC()),
		RangeEnd:   pgconv.TimeToPgtype(window.End.UTC()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping blocked slots", err)
	}

	out := make([]availability.Interval, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Interval{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return out, nil
}
