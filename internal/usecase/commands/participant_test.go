//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"study-booking/internal/domain/notification"
	"study-booking/internal/domain/participant"
	"study-booking/internal/domain/setting"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/infra"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/config"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/shared"
	"study-booking/tests/common/builder"
	"study-booking/tests/common/memuow"
	sharedmock "study-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParticipantCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memuow.Store
	notifier *sharedmock.MockNotifier
	links    shared.Links
	cmds     commands.ParticipantCommands
}

func (s *ParticipantCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memuow.New()
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.links = shared.NewLinks(config.NewTestConfig())
	s.cmds = commands.NewParticipantCommands(s.store, s.notifier, clock.NewFixedClock(builder.NewBookingBuilder().Now), s.links)
}

func (s *ParticipantCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestParticipantCommandsSuite(t *testing.T) {
	suite.Run(t, new(ParticipantCommandsTestSuite))
}

func (s *ParticipantCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	req := reqdto.RegisterParticipantRequest{Name: "  Grace Hopper ", Email: "grace@example.com"}

	s.Run("success: stores the participant and sends the invitation", func() {
		var sent notification.Message
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) (notification.Delivery, error) {
				sent = msg
				return notification.Delivery{Channel: "resend", MessageID: "re_1"}, nil
			}).Times(1)

		result, err := s.cmds.Register(ctx, req)

		s.Require().NoError(err)
		s.Equal("Grace Hopper", result.Participant.Name().String())
		token := result.Participant.Token().String()
		s.Equal(s.links.InviteURL(token), result.InviteURL)
		s.True(result.Notification.Delivered)
		s.Equal("re_1", result.Notification.MessageID)

		s.Equal(notification.KindInvitation, sent.Kind)
		s.Equal("grace@example.com", sent.To.Email)
		s.Contains(sent.Body, "Hi Grace Hopper")
		s.Contains(sent.Body, result.InviteURL)
		s.Contains(sent.Body, s.links.ConsentURL())

		_, err = participant.ParseAccessToken(token)
		s.NoError(err)
		s.Len(s.store.Participants(), 1)
	})

	s.Run("success: uses the stored invitation template", func() {
		s.store.SetSetting(setting.KeyInvitationBody, "Welcome {{name}}! {{link}} {{unknown}}")
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) (notification.Delivery, error) {
				s.True(strings.HasPrefix(msg.Body, "Welcome Grace Hopper! "+s.links.InviteURL("")))
				s.True(strings.HasSuffix(msg.Body, "{{unknown}}"))
				return notification.Delivery{Channel: "smtp"}, nil
			}).Times(1)

		_, err := s.cmds.Register(ctx, req)
		s.Require().NoError(err)
	})

	s.Run("success: retries a token collision", func() {
		before := len(s.store.Participants())
		s.store.DuplicateTokens = 2
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{Channel: "smtp"}, nil).Times(1)

		result, err := s.cmds.Register(ctx, req)

		s.Require().NoError(err)
		s.NotNil(result.Participant)
		s.Len(s.store.Participants(), before+1)
		s.Zero(s.store.DuplicateTokens)
	})

	s.Run("success: undelivered invitation keeps the participant", func() {
		before := len(s.store.Participants())
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{}, errors.New("smtp: 421")).Times(1)

		result, err := s.cmds.Register(ctx, req)

		s.Require().NoError(err)
		s.False(result.Notification.Delivered)
		s.NotEmpty(result.InviteURL)
		s.Len(s.store.Participants(), before+1)
	})

	s.Run("error: token space exhausted", func() {
		before := len(s.store.Participants())
		s.store.DuplicateTokens = 3

		_, err := s.cmds.Register(ctx, req)

		s.ErrorIs(err, commands.ErrTokenExhausted)
		s.Len(s.store.Participants(), before)
	})

	s.Run("error: invalid input", func() {
		cases := []struct {
			name string
			req  reqdto.RegisterParticipantRequest
			want error
		}{
			{name: "blank name", req: reqdto.RegisterParticipantRequest{Name: "   ", Email: "a@example.com"}, want: participant.ErrEmptyName},
			{name: "bad email", req: reqdto.RegisterParticipantRequest{Name: "Ada", Email: "ada"}, want: participant.ErrInvalidEmail},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Register(ctx, tc.req)
				s.ErrorIs(err, commands.ErrInvalidInput)
				s.ErrorIs(err, tc.want)
			})
		}
	})

	s.Run("error: storage failure is returned as is", func() {
		s.store.FailWrites = infra.WrapRepoErr("failed to create participant", errors.New("conn closed"))
		defer func() { s.store.FailWrites = nil }()

		_, err := s.cmds.Register(ctx, req)

		s.Error(err)
		s.True(infra.IsKind(err, infra.KindDBFailure))
		s.NotErrorIs(err, commands.ErrTokenExhausted)
	})
}
