package commands

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/notification"
	"study-booking/internal/domain/participant"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/infra"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"
)

const tokenAttempts = 3

type RegisterResult struct {
	Participant  *participant.Participant
	InviteURL    string
	Notification NotificationOutcome
}

type ParticipantCommands interface {
	Register(ctx context.Context, req reqdto.RegisterParticipantRequest) (*RegisterResult, error)
}

type participantCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	links     shared.Links
	messenger messenger
}

func NewParticipantCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, links shared.Links) ParticipantCommands {
	return &participantCommandsImpl{
		uow:       uow,
		clock:     clk,
		links:     links,
		messenger: messenger{notifier: notifier, reads: uow.CommandReads},
	}
}

// Register creates the participant and sends the invitation. A token
// collision is retried with a fresh token; the invitation outcome never
// undoes the registration.
func (p *participantCommandsImpl) Register(ctx context.Context, req reqdto.RegisterParticipantRequest) (*RegisterResult, error) {
	var created *participant.Participant

	for attempt := 1; attempt <= tokenAttempts; attempt++ {
		token, err := participant.NewAccessToken()
		if err != nil {
			return nil, err
		}

		entity, err := req.ToDomain(token, p.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidInput)
		}

		err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Participants().Create(ctx, tx.DB(), entity)
		})
		if err == nil {
			created = entity
			break
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		slog.Warn("access token collision, retrying", "attempt", attempt)
	}

	if created == nil {
		return nil, ErrTokenExhausted
	}

	inviteURL := p.links.InviteURL(created.Token().String())
	slog.Info("participant registered", "participant_id", created.ID())

	outcome := p.messenger.send(ctx, notification.KindInvitation,
		notification.Recipient{Name: created.Name().String(), Email: created.Email().String()},
		notification.Values{
			Name:        created.Name().String(),
			Link:        inviteURL,
			ConsentLink: p.links.ConsentURL(),
		})

	return &RegisterResult{
		Participant:  created,
		InviteURL:    inviteURL,
		Notification: outcome,
	}, nil
}
