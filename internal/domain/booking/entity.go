package booking

import (
	"time"

	"study-booking/internal/domain/availability"

	"github.com/google/uuid"
)

// Booking is a participant's request for one of up to three one-hour slots.
// A selected slot and a calendar event exist only while it is confirmed.
type Booking struct {
	id            uuid.UUID
	participantID uuid.UUID
	candidates    []availability.Interval
	status        Status
	selected      *availability.Interval
	eventID       string
	createdAt     time.Time
	resolvedAt    *time.Time
}

func NewBooking(services *Services, participantID uuid.UUID, candidates []availability.Interval) (*Booking, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) > MaxCandidates {
		return nil, ErrTooManyCandidates
	}

	now := services.Clock.Now()
	normalized := make([]availability.Interval, len(candidates))
	for i, c := range candidates {
		if err := ValidateCandidate(services, c, now); err != nil {
			return nil, &CandidateError{Index: i + 1, Err: err}
		}
		normalized[i] = c.UTC()
	}

	return &Booking{
		id:            uuid.New(),
		participantID: participantID,
		candidates:    normalized,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ValidateCandidate(services *Services, slot availability.Interval, now time.Time) error {
	if !slot.Start.After(now) {
		return ErrSlotInPast
	}
	return services.Window.Validate(slot, now)
}

func ReconstructBooking(
	id, participantID uuid.UUID,
	candidates []availability.Interval,
	status Status,
	selected *availability.Interval,
	eventID string,
	createdAt time.Time,
	resolvedAt *time.Time,
) *Booking {
	return &Booking{
		id:            id,
		participantID: participantID,
		candidates:    candidates,
		status:        status,
		selected:      selected,
		eventID:       eventID,
		createdAt:     createdAt,
		resolvedAt:    resolvedAt,
	}
}

// CandidateMatching returns the stored preference equal to chosen.
func (b *Booking) CandidateMatching(chosen availability.Interval) (availability.Interval, error) {
	for _, c := range b.candidates {
		if c.Equal(chosen) {
			return c, nil
		}
	}
	return availability.Interval{}, ErrCandidateNotOffered
}

func (b *Booking) Confirm(chosen availability.Interval, eventID string, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if eventID == "" {
		return ErrMissingEventID
	}
	slot, err := b.CandidateMatching(chosen)
	if err != nil {
		return err
	}
	b.status = StatusConfirmed
	b.selected = &slot
	b.eventID = eventID
	b.resolvedAt = &now
	return nil
}

func (b *Booking) Reject(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusRejected
	b.resolvedAt = &now
	return nil
}

// Remove cancels a confirmed booking. The preferences stay as history.
func (b *Booking) Remove(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusRemovedByAdmin
	b.selected = nil
	b.eventID = ""
	b.resolvedAt = &now
	return nil
}

func (b *Booking) ID() uuid.UUID                       { return b.id }
func (b *Booking) ParticipantID() uuid.UUID            { return b.participantID }
func (b *Booking) Candidates() []availability.Interval { return b.candidates }
func (b *Booking) Status() Status                      { return b.status }
func (b *Booking) Selected() *availability.Interval    { return b.selected }
func (b *Booking) EventID() string                     { return b.eventID }
func (b *Booking) CreatedAt() time.Time                { return b.createdAt }
func (b *Booking) ResolvedAt() *time.Time              { return b.resolvedAt }
