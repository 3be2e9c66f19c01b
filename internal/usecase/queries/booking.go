package queries

import (
	"context"

	"study-booking/internal/domain/booking"
	"study-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, status string) ([]*BookingView, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	// List returns every booking when status is empty.
	List(ctx context.Context, status string) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForToken(ctx context.Context, token string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings     BookingReadStore
	participants ParticipantReadStore
}

func NewBookingQueries(bookings BookingReadStore, participants ParticipantReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:     bookings,
		participants: participants,
	}
}

func (q *bookingQueriesImpl) List(ctx context.Context, status string) ([]*BookingView, error) {
	if status != "" {
		if _, err := booking.ParseStatus(status); err != nil {
			return nil, ErrInvalidStatus
		}
	}
	return q.bookings.List(ctx, status)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForToken(ctx context.Context, token string) ([]*BookingView, error) {
	p, err := participantByToken(ctx, q.participants, token)
	if err != nil {
		return nil, err
	}
	return q.bookings.ListByParticipant(ctx, p.ID)
}
