package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (id, participant_id, status, created_at)
VALUES ($1, $2, $3, $4)
`

type CreateBookingParams struct {
	ID            uuid.UUID
	ParticipantID uuid.UUID
	Status        string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.ParticipantID,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const createBookingCandidate = `-- name: CreateBookingCandidate :exec
INSERT INTO booking_candidates (booking_id, position, start_time, end_time)
VALUES ($1, $2, $3, $4)
`

type CreateBookingCandidateParams struct {
	BookingID uuid.UUID
	Position  int16
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

func (q *Queries) CreateBookingCandidate(ctx context.Context, db DBTX, arg CreateBookingCandidateParams) error {
	_, err := db.Exec(ctx, createBookingCandidate,
		arg.BookingID,
		arg.Position,
		arg.StartTime,
		arg.EndTime,
	)
	return err
}

const findBookingByID = `-- name: FindBookingByID :one
SELECT id, participant_id, status, selected_start, selected_end, calendar_event_id, created_at, resolved_at
FROM bookings
WHERE id = $1
`

func (q *Queries) FindBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, findBookingByID, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ParticipantID,
		&i.Status,
		&i.SelectedStart,
		&i.SelectedEnd,
		&i.CalendarEventID,
		&i.CreatedAt,
		&i.ResolvedAt,
	)
	return i, err
}

const findBookingViewByID = `-- name: FindBookingViewByID :one
SELECT b.id, b.participant_id, p.name AS participant_name, p.email AS participant_email,
       b.status, b.selected_start, b.selected_end, b.calendar_event_id, b.created_at, b.resolved_at
FROM bookings b
JOIN participants p ON p.id = b.participant_id
WHERE b.id = $1
`

type FindBookingViewByIDRow struct {
	ID               uuid.UUID
	ParticipantID    uuid.UUID
	ParticipantName  string
	ParticipantEmail string
	Status           string
	SelectedStart    pgtype.Timestamptz
	SelectedEnd      pgtype.Timestamptz
	CalendarEventID  pgtype.Text
	CreatedAt        pgtype.Timestamptz
	ResolvedAt       pgtype.Timestamptz
}

func (q *Queries) FindBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (FindBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, findBookingViewByID, id)
	var i FindBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.ParticipantID,
		&i.ParticipantName,
		&i.ParticipantEmail,
		&i.Status,
		&i.SelectedStart,
		&i.SelectedEnd,
		&i.CalendarEventID,
		&i.CreatedAt,
		&i.ResolvedAt,
	)
	return i, err
}

const listBookingCandidates = `-- name: ListBookingCandidates :many
SELECT booking_id, position, start_time, end_time
FROM booking_candidates
WHERE booking_id = $1
ORDER BY position
`

func (q *Queries) ListBookingCandidates(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingCandidates, error) {
	rows, err := db.Query(ctx, listBookingCandidates, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingCandidates
	for rows.Next() {
		var i BookingCandidates
		if err := rows.Scan(
			&i.BookingID,
			&i.Position,
			&i.StartTime,
			&i.EndTime,
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

const listBookingCandidatesByBookingIDs = `-- name: ListBookingCandidatesByBookingIDs :many
SELECT booking_id, position, start_time, end_time
FROM booking_candidates
WHERE booking_id = ANY($1::uuid[])
ORDER BY booking_id, position
`

func (q *Queries) ListBookingCandidatesByBookingIDs(ctx context.Context, db DBTX, bookingIds []uuid.UUID) ([]BookingCandidates, error) {
	rows, err := db.Query(ctx, listBookingCandidatesByBookingIDs, bookingIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingCandidates
	for rows.Next() {
		var i BookingCandidates
		if err := rows.Scan(
			&i.BookingID,
			&i.Position,
			&i.StartTime,
			&i.EndTime,
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

const listBookingViews = `-- name: ListBookingViews :many
SELECT b.id, b.participant_id, p.name AS participant_name, p.email AS participant_email,
       b.status, b.selected_start, b.selected_end, b.calendar_event_id, b.created_at, b.resolved_at
FROM bookings b
JOIN participants p ON p.id = b.participant_id
WHERE ($1::text IS NULL OR b.status = $1::text)
ORDER BY b.created_at DESC
`

type ListBookingViewsRow struct {
	ID               uuid.UUID
	ParticipantID    uuid.UUID
	ParticipantName  string
	ParticipantEmail string
	Status           string
	SelectedStart    pgtype.Timestamptz
	SelectedEnd      pgtype.Timestamptz
	CalendarEventID  pgtype.Text
	CreatedAt        pgtype.Timestamptz
	ResolvedAt       pgtype.Timestamptz
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, status pgtype.Text) ([]ListBookingViewsRow, error) {
	rows, err := db.Query(ctx, listBookingViews, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingViewsRow
	for rows.Next() {
		var i ListBookingViewsRow
		if err := rows.Scan(
			&i.ID,
			&i.ParticipantID,
			&i.ParticipantName,
			&i.ParticipantEmail,
			&i.Status,
			&i.SelectedStart,
			&i.SelectedEnd,
			&i.CalendarEventID,
			&i.CreatedAt,
			&i.ResolvedAt,
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

const listBookingViewsByParticipant = `-- name: ListBookingViewsByParticipant :many
SELECT b.id, b.participant_id, p.name AS participant_name, p.email AS participant_email,
       b.status, b.selected_start, b.selected_end, b.calendar_event_id, b.created_at, b.resolved_at
FROM bookings b
JOIN participants p ON p.id = b.participant_id
WHERE b.participant_id = $1
ORDER BY b.created_at DESC
`

type ListBookingViewsByParticipantRow struct {
	ID               uuid.UUID
	ParticipantID    uuid.UUID
	ParticipantName  string
	ParticipantEmail string
	Status           string
	SelectedStart    pgtype.Timestamptz
	SelectedEnd      pgtype.Timestamptz
	CalendarEventID  pgtype.Text
	CreatedAt        pgtype.Timestamptz
	ResolvedAt       pgtype.Timestamptz
}

func (q *Queries) ListBookingViewsByParticipant(ctx context.Context, db DBTX, participantID uuid.UUID) ([]ListBookingViewsByParticipantRow, error) {
	rows, err := db.Query(ctx, listBookingViewsByParticipant, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingViewsByParticipantRow
	for rows.Next() {
		var i ListBookingViewsByParticipantRow
		if err := rows.Scan(
			&i.ID,
			&i.ParticipantID,
			&i.ParticipantName,
			&i.ParticipantEmail,
			&i.Status,
			&i.SelectedStart,
			&i.SelectedEnd,
			&i.CalendarEventID,
			&i.CreatedAt,
			&i.ResolvedAt,
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

const updateBookingResolution = `-- name: UpdateBookingResolution :execrows
UPDATE bookings
SET status = $1,
    selected_start = $2,
    selected_end = $3,
    calendar_event_id = $4,
    resolved_at = $5
WHERE id = $6
  AND status = $7
`

type UpdateBookingResolutionParams struct {
	Status          string
	SelectedStart   pgtype.Timestamptz
	SelectedEnd     pgtype.Timestamptz
	CalendarEventID pgtype.Text
	ResolvedAt      pgtype.Timestamptz
	ID              uuid.UUID
	ExpectedStatus  string
}

func (q *Queries) UpdateBookingResolution(ctx context.Context, db DBTX, arg UpdateBookingResolutionParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingResolution,
		arg.Status,
		arg.SelectedStart,
		arg.SelectedEnd,
		arg.CalendarEventID,
		arg.ResolvedAt,
		arg.ID,
		arg.ExpectedStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
