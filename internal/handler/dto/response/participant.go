package response

import (
	"time"

	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ParticipantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	InviteURL    string    `json:"inviteUrl"`
	BookingCount int32     `json:"bookingCount"`
	LatestStatus string    `json:"latestStatus,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterParticipantResponse struct {
	Participant  *ParticipantResponse  `json:"participant"`
	Notification *NotificationResponse `json:"notification"`
}

// FromParticipantView fills InviteURL from the token through inviteURL, so
// the token itself never leaves the server in list responses.
func FromParticipantView(v *queries.ParticipantView, inviteURL func(token string) string) *ParticipantResponse {
	var out ParticipantResponse
	_ = copier.Copy(&out, v)
	out.InviteURL = inviteURL(v.Token)
	return &out
}

func FromRegisterResult(r *commands.RegisterResult) *RegisterParticipantResponse {
	p := r.Participant
	return &RegisterParticipantResponse{
		Participant: &ParticipantResponse{
			ID:        p.ID(),
			Name:      p.Name().String(),
			Email:     p.Email().String(),
			InviteURL: r.InviteURL,
			CreatedAt: p.CreatedAt(),
		},
		Notification: FromNotificationOutcome(&r.Notification),
	}
}
