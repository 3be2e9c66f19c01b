package converter

import (
	"fmt"
	"math"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		ParticipantID: b.ParticipantID(),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func CandidatesToInfra(b *booking.Booking) []sqlc.CreateBookingCandidateParams {
	candidates := b.Candidates()
	if len(candidates) > math.MaxInt16 {
		panic(fmt.Sprintf("too many candidates: %d", len(candidates)))
	}

	params := make([]sqlc.CreateBookingCandidateParams, len(candidates))
	for i, c := range candidates {
		params[i] = sqlc.CreateBookingCandidateParams{
			BookingID: b.ID(),
			Position:  int16(i + 1), // #nosec G115 -- bounded above
			StartTime: pgconv.TimeToPgtype(c.Start.UTC()),
			EndTime:   pgconv.TimeToPgtype(c.End.UTC()),
		}
	}
	return params
}

// ResolutionToInfra builds a conditional update: the row changes only while its
// status still equals expected.
func ResolutionToInfra(b *booking.Booking, expected booking.Status) sqlc.UpdateBookingResolutionParams {
	params := sqlc.UpdateBookingResolutionParams{
		ID:             b.ID(),
		Status:         b.Status().String(),
		ResolvedAt:     pgconv.TimePtrToPgtype(b.ResolvedAt()),
		ExpectedStatus: expected.String(),
	}

	if sel := b.Selected(); sel != nil {
		params.SelectedStart = pgconv.TimeToPgtype(sel.Start.UTC())
		params.SelectedEnd = pgconv.TimeToPgtype(sel.End.UTC())
	}
	if id := b.EventID(); id != "" {
		params.CalendarEventID = pgtype.Text{String: id, Valid: true}
	}

	return params
}

func CandidatesFromInfra(rows []sqlc.BookingCandidates) []availability.Interval {
	out := make([]availability.Interval, 0, len(rows))
	for _, r := range rows {
		out = append(out, availability.Interval{
			Start: pgconv.TimeFromPgtype(r.StartTime),
			End:   pgconv.TimeFromPgtype(r.EndTime),
		})
	}
	return out
}

func SelectedFromInfra(start, end pgtype.Timestamptz) *availability.Interval {
	if !start.Valid || !end.Valid {
		return nil
	}
	return &availability.Interval{Start: start.Time, End: end.Time}
}
