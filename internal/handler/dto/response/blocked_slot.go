package response

import (
	"time"

	"study-booking/internal/domain/blockedslot"
	"study-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockedSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockedSlotViews(vs []*queries.BlockedSlotView) []*BlockedSlotResponse {
	out := make([]*BlockedSlotResponse, len(vs))
	for i, v := range vs {
		var r BlockedSlotResponse
		_ = copier.Copy(&r, v)
		out[i] = &r
	}
	return out
}

func FromBlockedSlot(b *blockedslot.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:        b.ID(),
		Start:     b.Interval().Start,
		End:       b.Interval().End,
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt(),
	}
}
