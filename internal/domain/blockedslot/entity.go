package blockedslot

import (
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var ErrReasonTooLong = errs.New("reason exceeds maximum length")

// BlockedSlot is a range the admin has marked unbookable regardless of the
// external calendar.
type BlockedSlot struct {
	id        uuid.UUID
	interval  availability.Interval
	reason    string
	createdAt time.Time
}

func NewBlockedSlot(start, end time.Time, reason string, now time.Time) (*BlockedSlot, error) {
	iv, err := availability.NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	if len([]rune(reason)) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &BlockedSlot{
		id:        uuid.New(),
		interval:  iv.UTC(),
		reason:    reason,
		createdAt: now,
	}, nil
}

func (b *BlockedSlot) ID() uuid.UUID                   { return b.id }
func (b *BlockedSlot) Interval() availability.Interval { return b.interval }
func (b *BlockedSlot) Reason() string                  { return b.reason }
func (b *BlockedSlot) CreatedAt() time.Time            { return b.createdAt }
