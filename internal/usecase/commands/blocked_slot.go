package commands

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/blockedslot"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlockedSlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateBlockedSlotRequest) (*blockedslot.BlockedSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blockedSlotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlockedSlotCommands(uow shared.UnitOfWork, clk clock.Clock) BlockedSlotCommands {
	return &blockedSlotCommandsImpl{uow: uow, clock: clk}
}

// Create does not touch existing bookings; a blocked range only hides slots
// from future requests.
func (b *blockedSlotCommandsImpl) Create(ctx context.Context, req reqdto.CreateBlockedSlotRequest) (*blockedslot.BlockedSlot, error) {
	slot, err := req.ToDomain(b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedSlots().Create(ctx, tx.DB(), slot)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("blocked slot created", "blocked_slot_id", slot.ID(), "start", slot.Interval().Start, "end", slot.Interval().End)
	return slot, nil
}

func (b *blockedSlotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.BlockedSlots().Delete(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlockedSlotNotFound
	}

	slog.Info("blocked slot deleted", "blocked_slot_id", id)
	return nil
}
