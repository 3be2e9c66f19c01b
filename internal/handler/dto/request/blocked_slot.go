package request

import (
	"strings"
	"time"

	"study-booking/internal/domain/blockedslot"
)

type CreateBlockedSlotRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Reason string    `json:"reason" binding:"max=500"`
}

func (r CreateBlockedSlotRequest) ToDomain(now time.Time) (*blockedslot.BlockedSlot, error) {
	return blockedslot.NewBlockedSlot(r.Start, r.End, strings.TrimSpace(r.Reason), now)
}
