package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBlockedSlot = `-- name: CreateBlockedSlot :exec
INSERT INTO blocked_slots (id, start_time, end_time, reason, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateBlockedSlotParams struct {
	ID        uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	Reason    string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateBlockedSlot(ctx context.Context, db DBTX, arg CreateBlockedSlotParams) error {
	_, err := db.Exec(ctx, createBlockedSlot,
		arg.ID,
		arg.StartTime,
		arg.EndTime,
		arg.Reason,
		arg.CreatedAt,
	)
	return err
}

const deleteBlockedSlot = `-- name: DeleteBlockedSlot :execrows
DELETE FROM blocked_slots
WHERE id = $1
`

func (q *Queries) DeleteBlockedSlot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBlockedSlot, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listBlockedSlots = `-- name: ListBlockedSlots :many
SELECT id, start_time, end_time, reason, created_at
FROM blocked_slots
ORDER BY start_time
`

func (q *Queries) ListBlockedSlots(ctx context.Context, db DBTX) ([]BlockedSlots, error) {
	rows, err := db.Query(ctx, listBlockedSlots)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlockedSlots
	for rows.Next() {
		var i BlockedSlots
		if err := rows.Scan(
			&i.ID,
			&i.StartTime,
			&i.EndTime,
			&i.Reason,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBlockedSlotsOverlapping = `-- name: ListBlockedSlotsOverlapping :many
SELECT id, start_time, end_time, reason, created_at
FROM blocked_slots
WHERE start_time < $1
  AND end_time > $2
ORDER BY start_time
`

type ListBlockedSlotsOverlappingParams struct {
	RangeEnd   pgtype.Timestamptz
	RangeStart pgtype.Timestamptz
}

func (q *Queries) ListBlockedSlotsOverlapping(ctx context.Context, db DBTX, arg ListBlockedSlotsOverlappingParams) ([]BlockedSlots, error) {
	rows, err := db.Query(ctx, listBlockedSlotsOverlapping, arg.RangeEnd, arg.RangeStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlockedSlots
	for rows.Next() {
		var i BlockedSlots
		if err := rows.Scan(
			&i.ID,
			&i.StartTime,
			&i.EndTime,
			&i.Reason,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
