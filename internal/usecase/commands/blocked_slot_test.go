//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/blockedslot"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/usecase/commands"
	"study-booking/tests/common/builder"
	"study-booking/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedSlotCommands(t *testing.T) {
	b := builder.NewBookingBuilder()
	ctx := context.Background()
	block := b.Slot(2, 13)

	t.Run("create stores the range in UTC", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewBlockedSlotCommands(store, b.Clock())

		slot, err := cmds.Create(ctx, reqdto.CreateBlockedSlotRequest{Start: block.Start, End: block.End.Add(2 * block.Duration()), Reason: "lab closed"})

		require.NoError(t, err)
		assert.Equal(t, "lab closed", slot.Reason())
		assert.Equal(t, "UTC", slot.Interval().Start.Location().String())
		require.Len(t, store.BlockedSlots(), 1)
		assert.Equal(t, slot.ID(), store.BlockedSlots()[0].ID())
	})

	t.Run("create rejects an empty range", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewBlockedSlotCommands(store, b.Clock())

		_, err := cmds.Create(ctx, reqdto.CreateBlockedSlotRequest{Start: block.End, End: block.Start})

		assert.ErrorIs(t, err, commands.ErrInvalidInput)
		assert.ErrorIs(t, err, availability.ErrInvalidInterval)
		assert.Empty(t, store.BlockedSlots())
	})

	t.Run("create rejects an overlong reason", func(t *testing.T) {
		cmds := commands.NewBlockedSlotCommands(memuow.New(), b.Clock())

		_, err := cmds.Create(ctx, reqdto.CreateBlockedSlotRequest{
			Start:  block.Start,
			End:    block.End,
			Reason: strings.Repeat("r", blockedslot.MaxReasonLength+1),
		})

		assert.ErrorIs(t, err, blockedslot.ErrReasonTooLong)
	})

	t.Run("delete removes an existing range", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewBlockedSlotCommands(store, b.Clock())
		slot, err := cmds.Create(ctx, reqdto.CreateBlockedSlotRequest{Start: block.Start, End: block.End})
		require.NoError(t, err)

		require.NoError(t, cmds.Delete(ctx, slot.ID()))
		assert.Empty(t, store.BlockedSlots())
	})

	t.Run("delete of an unknown range", func(t *testing.T) {
		cmds := commands.NewBlockedSlotCommands(memuow.New(), b.Clock())
		assert.ErrorIs(t, cmds.Delete(ctx, uuid.New()), commands.ErrBlockedSlotNotFound)
	})
}
