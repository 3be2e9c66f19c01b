package response

import (
	"time"

	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type BookingResponse struct {
	ID               uuid.UUID      `json:"id"`
	ParticipantID    uuid.UUID      `json:"participantId"`
	ParticipantName  string         `json:"participantName"`
	ParticipantEmail string         `json:"participantEmail"`
	Status           string         `json:"status"`
	Candidates       []SlotResponse `json:"candidates"`
	Selected         *SlotResponse  `json:"selected,omitempty"`
	CalendarEventID  *string        `json:"calendarEventId,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	ResolvedAt       *time.Time     `json:"resolvedAt,omitempty"`
}

// NotificationResponse tells the admin whether the participant was e-mailed.
// When Delivered is false the message has to be sent by hand.
type NotificationResponse struct {
	Delivered bool   `json:"delivered"`
	Channel   string `json:"channel,omitempty"`
	MessageID string `json:"messageId,omitempty"`
}

type ResolutionResponse struct {
	Booking      *BookingResponse      `json:"booking"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var out BookingResponse
	_ = copier.Copy(&out, v)
	if out.Candidates == nil {
		out.Candidates = []SlotResponse{}
	}
	return &out
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromNotificationOutcome(o *commands.NotificationOutcome) *NotificationResponse {
	if o == nil {
		return nil
	}
	return &NotificationResponse{
		Delivered: o.Delivered,
		Channel:   o.Channel,
		MessageID: o.MessageID,
	}
}
