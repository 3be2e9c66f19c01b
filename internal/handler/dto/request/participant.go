package request

import (
	"time"

	"study-booking/internal/domain/participant"
)

type RegisterParticipantRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
}

func (r RegisterParticipantRequest) ToDomain(token participant.AccessToken, now time.Time) (*participant.Participant, error) {
	return participant.NewParticipant(r.Name, r.Email, token, now)
}
