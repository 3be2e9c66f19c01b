package queries

import (
	"context"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"
)

// AvailabilityView is what a participant sees when opening their link.
type AvailabilityView struct {
	ParticipantName string
	Week            *availability.Week
}

type AvailabilityQueries interface {
	WeekForToken(ctx context.Context, token string, offset int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	participants ParticipantReadStore
	oracle       shared.AvailabilityOracle
}

func NewAvailabilityQueries(participants ParticipantReadStore, oracle shared.AvailabilityOracle) AvailabilityQueries {
	return &availabilityQueriesImpl{
		participants: participants,
		oracle:       oracle,
	}
}

func (q *availabilityQueriesImpl) WeekForToken(ctx context.Context, token string, offset int) (*AvailabilityView, error) {
	p, err := participantByToken(ctx, q.participants, token)
	if err != nil {
		return nil, err
	}

	week, err := q.oracle.Week(ctx, offset)
	if err != nil {
		if errs.Is(err, availability.ErrWeekOutOfRange) {
			return nil, errs.Mark(err, ErrInvalidWeek)
		}
		return nil, err
	}

	return &AvailabilityView{
		ParticipantName: p.Name,
		Week:            week,
	}, nil
}
