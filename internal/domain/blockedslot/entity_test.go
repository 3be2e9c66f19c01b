//go:build unit

package blockedslot_test

import (
	"strings"
	"testing"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/blockedslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockedSlot(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	b, err := blockedslot.NewBlockedSlot(start, start.Add(3*time.Hour), "lab closed", now)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, b.Interval().Duration())
	assert.Equal(t, "lab closed", b.Reason())

	_, err = blockedslot.NewBlockedSlot(start, start, "", now)
	assert.ErrorIs(t, err, availability.ErrInvalidInterval)

	_, err = blockedslot.NewBlockedSlot(start, start.Add(time.Hour), strings.Repeat("x", blockedslot.MaxReasonLength+1), now)
	assert.ErrorIs(t, err, blockedslot.ErrReasonTooLong)
}
