package repository

import (
	"context"

	"study-booking/internal/domain/booking"
	"study-booking/internal/infra"
	"study-booking/internal/infra/repository/converter"
	sqlc "study-booking/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingCandidate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingCandidateParams) error
	UpdateBookingResolution(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingResolutionParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the booking and its preferences. Callers run it inside a
// transaction so a failed candidate insert leaves nothing behind.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, params := range converter.CandidatesToInfra(b) {
		if err := r.queries.CreateBookingCandidate(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create booking candidate", err)
		}
	}

	return nil
}

func (r *BookingRepository) UpdateResolution(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) (bool, error) {
	affected, err := r.queries.UpdateBookingResolution(ctx, tx, converter.ResolutionToInfra(b, expected))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return affected > 0, nil
}
