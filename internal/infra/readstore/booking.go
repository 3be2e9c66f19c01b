package readstore

import (
	"context"

	"study-booking/internal/domain/booking"
	"study-booking/internal/infra"
	"study-booking/internal/infra/repository/converter"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingViewByIDRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListBookingViewsRow, error)
	ListBookingViewsByParticipant(ctx context.Context, db sqlc.DBTX, participantID uuid.UUID) ([]sqlc.ListBookingViewsByParticipantRow, error)
	ListBookingCandidates(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingCandidates, error)
	ListBookingCandidatesByBookingIDs(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.BookingCandidates, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindSnapshot loads the aggregate state commands work on.
func (r *BookingReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	candidates, err := r.queries.ListBookingCandidates(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking candidates", err)
	}

	return &shared.BookingSnapshot{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		Candidates:    converter.CandidatesFromInfra(candidates),
		Status:        booking.Status(row.Status),
		Selected:      converter.SelectedFromInfra(row.SelectedStart, row.SelectedEnd),
		EventID:       row.CalendarEventID.String,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		ResolvedAt:    pgconv.TimePtrFromPgtype(row.ResolvedAt),
	}, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	candidates, err := r.queries.ListBookingCandidates(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking candidates", err)
	}

	view := toBookingView(bookingRow(row))
	view.Candidates = toSlotViews(candidates)
	return view, nil
}

// List returns bookings newest first; an empty status means every status.
func (r *BookingReadStore) List(ctx context.Context, status string) ([]*queries.BookingView, error) {
	filter := pgtype.Text{String: status, Valid: status != ""}
	rows, err := r.queries.ListBookingViews(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	base := make([]bookingRow, len(rows))
	for i, row := range rows {
		base[i] = bookingRow(row)
	}
	return r.withCandidates(ctx, base)
}

func (r *BookingReadStore) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByParticipant(ctx, r.db, participantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participant bookings", err)
	}

	base := make([]bookingRow, len(rows))
	for i, row := range rows {
		base[i] = bookingRow(row)
	}
	return r.withCandidates(ctx, base)
}

// withCandidates attaches preferences with one extra query for the whole page.
func (r *BookingReadStore) withCandidates(ctx context.Context, rows []bookingRow) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	candidates, err := r.queries.ListBookingCandidatesByBookingIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking candidates", err)
	}

	byBooking := make(map[uuid.UUID][]sqlc.BookingCandidates, len(rows))
	for _, c := range candidates {
		byBooking[c.BookingID] = append(byBooking[c.BookingID], c)
	}

	for _, row := range rows {
		view := toBookingView(row)
		view.Candidates = toSlotViews(byBooking[row.ID])
		views = append(views, view)
	}
	return views, nil
}

// bookingRow is the shape shared by every joined booking query.
type bookingRow sqlc.FindBookingViewByIDRow

func toBookingView(row bookingRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:               row.ID,
		ParticipantID:    row.ParticipantID,
		ParticipantName:  row.ParticipantName,
		ParticipantEmail: row.ParticipantEmail,
		Status:           row.Status,
		CalendarEventID:  pgconv.StringPtrFromPgtype(row.CalendarEventID),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		ResolvedAt:       pgconv.TimePtrFromPgtype(row.ResolvedAt),
	}
	if sel := converter.SelectedFromInfra(row.SelectedStart, row.SelectedEnd); sel != nil {
		view.Selected = &queries.SlotView{Start: sel.Start, End: sel.End}
	}
	return view
}

func toSlotViews(rows []sqlc.BookingCandidates) []queries.SlotView {
	out := make([]queries.SlotView, 0, len(rows))
	for _, c := range converter.CandidatesFromInfra(rows) {
		out = append(out, queries.SlotView{Start: c.Start, End: c.End})
	}
	return out
}
