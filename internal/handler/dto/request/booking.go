package request

import (
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
)

type SlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

func (r SlotRequest) ToDomain() (availability.Interval, error) {
	return availability.NewInterval(r.Start, r.End)
}

type SubmitBookingRequest struct {
	Slots []SlotRequest `json:"candidates" binding:"required,min=1,max=3,dive"`
}

// ToDomain converts the preferences in order; a malformed one is reported by
// its 1-based position.
func (r SubmitBookingRequest) ToDomain() ([]availability.Interval, error) {
	out := make([]availability.Interval, 0, len(r.Slots))
	for i, s := range r.Slots {
		slot, err := s.ToDomain()
		if err != nil {
			return nil, &booking.CandidateError{Index: i + 1, Err: err}
		}
		out = append(out, slot)
	}
	return out, nil
}

type ApproveBookingRequest struct {
	SlotRequest
}

type ListBookingsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed rejected removed_by_admin"`
}

type WeekRequest struct {
	Week int `form:"week" binding:"min=0"`
}
