//go:build unit || e2e

package builder

import (
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
	reqdto "study-booking/internal/handler/dto/request"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	StudyTimeZone = "America/Toronto"
	DayStartHour  = 9
	DayEndHour    = 22
	MaxWeeks      = 8
)

// StudyLocation panics on a missing tz database; tests cannot run without it.
func StudyLocation() *time.Location {
	loc, err := time.LoadLocation(StudyTimeZone)
	if err != nil {
		panic(err)
	}
	return loc
}

func StudyWindow() availability.Window {
	w, err := availability.NewWindow(StudyLocation(), DayStartHour, DayEndHour, MaxWeeks)
	if err != nil {
		panic(err)
	}
	return w
}

type BookingBuilder struct {
	Now              time.Time
	Location         *time.Location
	ParticipantID    uuid.UUID
	ParticipantName  string
	ParticipantEmail string
	Candidates       []availability.Interval
}

// NewBookingBuilder pins "now" to Monday 2026-03-02 08:00 local time so that
// day offsets in Slot land on predictable weekdays.
func NewBookingBuilder() *BookingBuilder {
	loc := StudyLocation()
	b := &BookingBuilder{
		Now:              time.Date(2026, time.March, 2, 8, 0, 0, 0, loc),
		Location:         loc,
		ParticipantID:    uuid.New(),
		ParticipantName:  "Ada Lovelace",
		ParticipantEmail: "ada@example.com",
	}
	b.Candidates = []availability.Interval{b.Slot(1, 10), b.Slot(2, 11), b.Slot(3, 14)}
	return b
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCandidates(slots ...availability.Interval) *BookingBuilder {
	b.Candidates = slots
	return b
}

func (b *BookingBuilder) WithParticipantID(id uuid.UUID) *BookingBuilder {
	b.ParticipantID = id
	return b
}

// Slot is the one-hour slot starting at hour (local) on the day that is
// day days after Now.
func (b *BookingBuilder) Slot(day, hour int) availability.Interval {
	start := time.Date(b.Now.Year(), b.Now.Month(), b.Now.Day()+day, hour, 0, 0, 0, b.Location)
	return availability.Interval{Start: start, End: start.Add(availability.SlotDuration)}
}

func (b *BookingBuilder) Clock() *clock.FixedClock {
	return clock.NewFixedClock(b.Now)
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{Clock: b.Clock(), Window: StudyWindow()}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Services(), b.ParticipantID, b.Candidates)
}

func (b *BookingBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	slots := make([]reqdto.SlotRequest, 0, len(b.Candidates))
	for _, c := range b.Candidates {
		slots = append(slots, reqdto.SlotRequest{Start: c.Start, End: c.End})
	}
	return reqdto.SubmitBookingRequest{Slots: slots}
}

func (b *BookingBuilder) BuildApproveRequestDTO(index int) reqdto.ApproveBookingRequest {
	c := b.Candidates[index]
	return reqdto.ApproveBookingRequest{SlotRequest: reqdto.SlotRequest{Start: c.Start, End: c.End}}
}

func (b *BookingBuilder) BuildSnapshot(id uuid.UUID, status booking.Status) *shared.BookingSnapshot {
	candidates := make([]availability.Interval, len(b.Candidates))
	for i, c := range b.Candidates {
		candidates[i] = c.UTC()
	}
	return &shared.BookingSnapshot{
		ID:            id,
		ParticipantID: b.ParticipantID,
		Candidates:    candidates,
		Status:        status,
		CreatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildView(status booking.Status) *queries.BookingView {
	candidates := make([]queries.SlotView, 0, len(b.Candidates))
	for _, c := range b.Candidates {
		candidates = append(candidates, queries.SlotView{Start: c.Start.UTC(), End: c.End.UTC()})
	}
	return &queries.BookingView{
		ID:               uuid.New(),
		ParticipantID:    b.ParticipantID,
		ParticipantName:  b.ParticipantName,
		ParticipantEmail: b.ParticipantEmail,
		Status:           status.String(),
		Candidates:       candidates,
		CreatedAt:        b.Now,
	}
}

func (b *BookingBuilder) BuildInfraCandidates(bookingID uuid.UUID) []sqlc.BookingCandidates {
	rows := make([]sqlc.BookingCandidates, 0, len(b.Candidates))
	for i, c := range b.Candidates {
		rows = append(rows, sqlc.BookingCandidates{
			BookingID: bookingID,
			Position:  int16(i + 1), // #nosec G115 -- at most three
			StartTime: pgtype.Timestamptz{Time: c.Start.UTC(), Valid: true},
			EndTime:   pgtype.Timestamptz{Time: c.End.UTC(), Valid: true},
		})
	}
	return rows
}

func (b *BookingBuilder) BuildInfraView(id uuid.UUID, status booking.Status) sqlc.FindBookingViewByIDRow {
	return sqlc.FindBookingViewByIDRow{
		ID:               id,
		ParticipantID:    b.ParticipantID,
		ParticipantName:  b.ParticipantName,
		ParticipantEmail: b.ParticipantEmail,
		Status:           status.String(),
		CreatedAt:        pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}
