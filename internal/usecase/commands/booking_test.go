//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
	"study-booking/internal/domain/notification"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/shared"
	"study-booking/tests/common/builder"
	"study-booking/tests/common/memuow"
	sharedmock "study-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// slotIs matches an availability.Interval by instant, ignoring location.
type slotIs availability.Interval

func (m slotIs) Matches(x any) bool {
	s, ok := x.(availability.Interval)
	return ok && s.Equal(availability.Interval(m))
}

func (m slotIs) String() string {
	return fmt.Sprintf("slot %s-%s", m.Start.UTC().Format(time.RFC3339), m.End.UTC().Format(time.RFC3339))
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memuow.Store
	oracle   *sharedmock.MockAvailabilityOracle
	calendar *sharedmock.MockCalendarSynchronizer
	notifier *sharedmock.MockNotifier
	b        *builder.BookingBuilder
	p        *builder.ParticipantBuilder
	links    shared.Links
	cmds     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memuow.New()
	s.oracle = sharedmock.NewMockAvailabilityOracle(s.ctrl)
	s.calendar = sharedmock.NewMockCalendarSynchronizer(s.ctrl)
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)

	s.p = builder.NewParticipantBuilder()
	s.b = builder.NewBookingBuilder().WithParticipantID(s.p.ID)
	s.store.AddParticipant(s.p.BuildSnapshot())

	cfg := config.NewTestConfig()
	s.links = shared.NewLinks(cfg)
	s.cmds = commands.NewBookingCommands(s.store, s.oracle, s.calendar, s.notifier, s.b.Services(), s.links, cfg)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectAvailable(slots ...availability.Interval) {
	for _, slot := range slots {
		s.oracle.EXPECT().Check(gomock.Any(), slotIs(slot)).Return(availability.StatusAvailable, nil).Times(1)
	}
}

func (s *BookingCommandsTestSuite) seedBooking(status booking.Status, selected int) uuid.UUID {
	id := uuid.New()
	snap := s.b.BuildSnapshot(id, status)
	if status == booking.StatusConfirmed {
		sel := snap.Candidates[selected]
		resolved := s.b.Now
		snap.Selected = &sel
		snap.EventID = "evt-existing"
		snap.ResolvedAt = &resolved
	}
	s.store.AddBooking(snap)
	return id
}

func (s *BookingCommandsTestSuite) requireCandidateError(err error, target error, index int) {
	s.Require().Error(err)
	s.True(errs.Is(err, target), "expected %v, got %v", target, err)
	var cerr *booking.CandidateError
	s.Require().True(errs.As(err, &cerr), "expected a candidate error, got %v", err)
	s.Equal(index, cerr.Index)
}

// ================================================================================
// Submit
// ================================================================================

func (s *BookingCommandsTestSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("success: stores a pending booking without touching the calendar", func() {
		s.expectAvailable(s.b.Candidates...)

		result, err := s.cmds.Submit(ctx, s.p.Token, s.b.BuildSubmitRequestDTO())

		s.Require().NoError(err)
		s.Equal(booking.StatusPending, result.Status)
		s.Len(result.Candidates, 3)

		stored, ok := s.store.Booking(result.BookingID)
		s.Require().True(ok)
		s.Equal(booking.StatusPending, stored.Status)
		s.Equal(s.p.ID, stored.ParticipantID)
		s.Nil(stored.Selected)
		s.Empty(stored.EventID)
		for i, c := range stored.Candidates {
			s.True(c.Equal(s.b.Candidates[i]), "preference %d keeps its order", i+1)
		}
	})

	s.Run("error: second preference taken rejects the whole submission", func() {
		before := len(s.store.Bookings())
		s.expectAvailable(s.b.Candidates[0])
		s.oracle.EXPECT().Check(gomock.Any(), slotIs(s.b.Candidates[1])).Return(availability.StatusUnavailable, nil).Times(1)

		_, err := s.cmds.Submit(ctx, s.p.Token, s.b.BuildSubmitRequestDTO())

		s.requireCandidateError(err, commands.ErrSlotUnavailable, 2)
		s.Len(s.store.Bookings(), before)
	})

	s.Run("error: preference that started meanwhile", func() {
		s.oracle.EXPECT().Check(gomock.Any(), slotIs(s.b.Candidates[0])).Return(availability.StatusPast, nil).Times(1)

		_, err := s.cmds.Submit(ctx, s.p.Token, s.b.BuildSubmitRequestDTO())

		s.requireCandidateError(err, commands.ErrInvalidCandidate, 1)
		s.True(errs.Is(err, booking.ErrSlotInPast))
	})

	s.Run("error: calendar outage fails closed", func() {
		lookup := errs.Mark(errors.New("googleapi: 503"), shared.ErrBusyLookupFailed)
		s.expectAvailable(s.b.Candidates[0], s.b.Candidates[1])
		s.oracle.EXPECT().Check(gomock.Any(), slotIs(s.b.Candidates[2])).Return(availability.StatusUnavailable, lookup).Times(1)

		_, err := s.cmds.Submit(ctx, s.p.Token, s.b.BuildSubmitRequestDTO())

		s.requireCandidateError(err, commands.ErrCalendarUnavailable, 3)
	})

	s.Run("error: malformed preference is rejected before any lookup", func() {
		req := s.b.BuildSubmitRequestDTO()
		req.Slots[1].End = req.Slots[1].Start.Add(90 * time.Minute)

		_, err := s.cmds.Submit(ctx, s.p.Token, req)

		s.requireCandidateError(err, commands.ErrInvalidCandidate, 2)
		s.True(errs.Is(err, availability.ErrInvalidDuration))
	})

	s.Run("error: preference outside bookable hours", func() {
		late := s.b.Slot(2, 22)
		req := reqdto.SubmitBookingRequest{Slots: []reqdto.SlotRequest{{Start: late.Start, End: late.End}}}

		_, err := s.cmds.Submit(ctx, s.p.Token, req)

		s.requireCandidateError(err, commands.ErrInvalidCandidate, 1)
		s.True(errs.Is(err, availability.ErrOutsideWindow))
	})

	s.Run("error: unknown token", func() {
		_, err := s.cmds.Submit(ctx, "unknown-token", s.b.BuildSubmitRequestDTO())
		s.ErrorIs(err, commands.ErrParticipantNotFound)
	})
}

// ================================================================================
// Approve
// ================================================================================

func (s *BookingCommandsTestSuite) TestApprove() {
	ctx := context.Background()

	s.Run("success: creates the event, confirms and notifies", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		chosen := s.b.Candidates[1]

		s.expectAvailable(chosen)
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.EventRequest) (string, error) {
				s.Equal(id, req.BookingID)
				s.Equal("User Study", req.Summary)
				s.True(req.Slot.Equal(chosen))
				s.Equal(s.p.Email, req.AttendeeEmail)
				s.Contains(req.Description, s.links.ConsentURL())
				return "evt-1", nil
			}).Times(1)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) (notification.Delivery, error) {
				s.Equal(notification.KindConfirmation, msg.Kind)
				s.Equal(s.p.Email, msg.To.Email)
				s.Contains(msg.Body, s.p.Name)
				s.Contains(msg.Body, notification.FormatSlot(chosen, s.b.Location))
				return notification.Delivery{Channel: "resend", MessageID: "m-1"}, nil
			}).Times(1)

		result, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(1))

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, result.Status)
		s.Equal("evt-1", result.EventID)
		s.Require().NotNil(result.Notification)
		s.True(result.Notification.Delivered)
		s.Equal("resend", result.Notification.Channel)

		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusConfirmed, stored.Status)
		s.Require().NotNil(stored.Selected)
		s.True(stored.Selected.Equal(chosen))
		s.Equal("evt-1", stored.EventID)
		s.NotNil(stored.ResolvedAt)
	})

	s.Run("success: undelivered confirmation does not undo the approval", func() {
		id := s.seedBooking(booking.StatusPending, 0)

		s.expectAvailable(s.b.Candidates[0])
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-2", nil).Times(1)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{}, errors.New("all channels failed")).Times(1)

		result, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))

		s.Require().NoError(err)
		s.False(result.Notification.Delivered)
		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusConfirmed, stored.Status)
	})

	s.Run("error: approving twice creates a single event", func() {
		id := s.seedBooking(booking.StatusPending, 0)

		s.expectAvailable(s.b.Candidates[0])
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-3", nil).Times(1)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{Channel: "smtp"}, nil).Times(1)

		_, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))
		s.Require().NoError(err)

		_, err = s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))
		s.ErrorIs(err, commands.ErrBookingNotFound)

		stored, _ := s.store.Booking(id)
		s.Equal("evt-3", stored.EventID)
	})

	s.Run("error: rejected booking cannot be approved", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		_, err := s.cmds.Reject(ctx, id)
		s.Require().NoError(err)

		_, err = s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: slot that was never requested", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		other := s.b.Slot(4, 16)
		req := reqdto.ApproveBookingRequest{SlotRequest: reqdto.SlotRequest{Start: other.Start, End: other.End}}

		_, err := s.cmds.Approve(ctx, id, req)

		s.ErrorIs(err, commands.ErrInvalidCandidate)
		s.True(errs.Is(err, booking.ErrCandidateNotOffered))
	})

	s.Run("error: chosen slot taken since submission", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		s.oracle.EXPECT().Check(gomock.Any(), slotIs(s.b.Candidates[2])).Return(availability.StatusUnavailable, nil).Times(1)

		_, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(2))

		s.requireCandidateError(err, commands.ErrSlotUnavailable, 3)
		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusPending, stored.Status)
	})

	s.Run("error: event creation failure leaves the booking pending", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		s.expectAvailable(s.b.Candidates[0])
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("", errors.New("googleapi: 500")).Times(1)

		_, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))

		s.ErrorIs(err, commands.ErrCalendarUnavailable)
		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusPending, stored.Status)
		s.Empty(stored.EventID)
	})

	s.Run("error: losing the race removes the event again", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		s.store.BeforeUpdate = func(st *memuow.Store, bookingID uuid.UUID) {
			st.SetBookingStatus(bookingID, booking.StatusRejected)
		}
		defer func() { s.store.BeforeUpdate = nil }()

		s.expectAvailable(s.b.Candidates[0])
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-race", nil).Times(1)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt-race").Return(nil).Times(1)

		_, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))

		s.ErrorIs(err, commands.ErrBookingNotFound)
		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusRejected, stored.Status)
	})

	s.Run("error: write failure removes the event again", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		s.expectAvailable(s.b.Candidates[0])
		s.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-orphan", nil).Times(1)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt-orphan").Return(nil).Times(1)

		s.store.FailWrites = errors.New("connection reset")
		defer func() { s.store.FailWrites = nil }()

		_, err := s.cmds.Approve(ctx, id, s.b.BuildApproveRequestDTO(0))
		s.Error(err)
	})

	s.Run("error: unknown booking", func() {
		_, err := s.cmds.Approve(ctx, uuid.New(), s.b.BuildApproveRequestDTO(0))
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}

// ================================================================================
// Reject / Remove
// ================================================================================

func (s *BookingCommandsTestSuite) TestReject() {
	ctx := context.Background()

	s.Run("success: no calendar call and no notification", func() {
		id := s.seedBooking(booking.StatusPending, 0)

		result, err := s.cmds.Reject(ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StatusRejected, result.Status)
		s.Nil(result.Notification)
		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusRejected, stored.Status)
		s.NotNil(stored.ResolvedAt)
	})

	s.Run("error: only pending bookings can be rejected", func() {
		id := s.seedBooking(booking.StatusConfirmed, 1)
		_, err := s.cmds.Reject(ctx, id)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestRemove() {
	ctx := context.Background()

	s.Run("success: deletes the event, clears the selection and notifies", func() {
		id := s.seedBooking(booking.StatusConfirmed, 1)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt-existing").Return(nil).Times(1)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) (notification.Delivery, error) {
				s.Equal(notification.KindCancellation, msg.Kind)
				s.Contains(msg.Body, notification.FormatSlot(s.b.Candidates[1], s.b.Location))
				s.Contains(msg.Body, s.links.InviteURL(s.p.Token))
				return notification.Delivery{Channel: "smtp"}, nil
			}).Times(1)

		result, err := s.cmds.Remove(ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StatusRemovedByAdmin, result.Status)
		s.True(result.Notification.Delivered)

		stored, _ := s.store.Booking(id)
		s.Equal(booking.StatusRemovedByAdmin, stored.Status)
		s.Nil(stored.Selected)
		s.Empty(stored.EventID)
		s.Len(stored.Candidates, 3)
	})

	s.Run("success: event already gone", func() {
		id := s.seedBooking(booking.StatusConfirmed, 0)
		s.calendar.EXPECT().DeleteEvent(gomock.Any(), "evt-existing").Return(errors.New("googleapi: 410 gone")).Times(1)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{Channel: "smtp"}, nil).Times(1)

		result, err := s.cmds.Remove(ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StatusRemovedByAdmin, result.Status)
	})

	s.Run("error: pending bookings cannot be removed", func() {
		id := s.seedBooking(booking.StatusPending, 0)
		_, err := s.cmds.Remove(ctx, id)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
