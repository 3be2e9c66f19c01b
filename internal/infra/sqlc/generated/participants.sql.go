package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createParticipant = `-- name: CreateParticipant :exec
INSERT INTO participants (id, name, email, token, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateParticipantParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Token     string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateParticipant(ctx context.Context, db DBTX, arg CreateParticipantParams) error {
	_, err := db.Exec(ctx, createParticipant,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Token,
		arg.CreatedAt,
	)
	return err
}

const findParticipantByID = `-- name: FindParticipantByID :one
SELECT id, name, email, token, created_at
FROM participants
WHERE id = $1
`

func (q *Queries) FindParticipantByID(ctx context.Context, db DBTX, id uuid.UUID) (Participants, error) {
	row := db.QueryRow(ctx, findParticipantByID, id)
	var i Participants
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Token,
		&i.CreatedAt,
	)
	return i, err
}

const findParticipantByToken = `-- name: FindParticipantByToken :one
SELECT id, name, email, token, created_at
FROM participants
WHERE token = $1
`

func (q *Queries) FindParticipantByToken(ctx context.Context, db DBTX, token string) (Participants, error) {
	row := db.QueryRow(ctx, findParticipantByToken, token)
	var i Participants
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Token,
		&i.CreatedAt,
	)
	return i, err
}

const listParticipants = `-- name: ListParticipants :many
SELECT p.id, p.name, p.email, p.token, p.created_at,
       COUNT(b.id)::int AS booking_count,
       COALESCE((
           SELECT lb.status
           FROM bookings lb
           WHERE lb.participant_id = p.id
           ORDER BY lb.created_at DESC
           LIMIT 1
       ), '')::text AS latest_status
FROM participants p
LEFT JOIN bookings b ON b.participant_id = p.id
GROUP BY p.id
ORDER BY p.created_at DESC
`

type ListParticipantsRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Token        string
	CreatedAt    pgtype.Timestamptz
	BookingCount int32
	LatestStatus string
}

func (q *Queries) ListParticipants(ctx context.Context, db DBTX) ([]ListParticipantsRow, error) {
	rows, err := db.Query(ctx, listParticipants)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListParticipantsRow
	for rows.Next() {
		var i ListParticipantsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Token,
			&i.CreatedAt,
			&i.BookingCount,
			&i.LatestStatus,
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
