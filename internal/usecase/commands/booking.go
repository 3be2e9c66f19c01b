package commands

import (
	"context"
	"fmt"
	"log/slog"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
	"study-booking/internal/domain/notification"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/infra"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitResult struct {
	BookingID  uuid.UUID
	Status     booking.Status
	Candidates []availability.Interval
}

type ResolutionResult struct {
	BookingID    uuid.UUID
	Status       booking.Status
	Selected     *availability.Interval
	EventID      string
	Notification *NotificationOutcome
}

type BookingCommands interface {
	Submit(ctx context.Context, token string, req reqdto.SubmitBookingRequest) (*SubmitResult, error)
	Approve(ctx context.Context, id uuid.UUID, req reqdto.ApproveBookingRequest) (*ResolutionResult, error)
	Reject(ctx context.Context, id uuid.UUID) (*ResolutionResult, error)
	Remove(ctx context.Context, id uuid.UUID) (*ResolutionResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	oracle     shared.AvailabilityOracle
	calendar   shared.CalendarSynchronizer
	services   *booking.Services
	links      shared.Links
	messenger  messenger
	eventTitle string
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	oracle shared.AvailabilityOracle,
	calendar shared.CalendarSynchronizer,
	notifier shared.Notifier,
	services *booking.Services,
	links shared.Links,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		oracle:     oracle,
		calendar:   calendar,
		services:   services,
		links:      links,
		messenger:  messenger{notifier: notifier, reads: uow.CommandReads},
		eventTitle: cfg.Calendar.EventTitle,
	}
}

// Submit records up to three preferences. Nothing touches the external
// calendar until an admin approves one of them.
func (b *bookingCommandsImpl) Submit(ctx context.Context, token string, req reqdto.SubmitBookingRequest) (*SubmitResult, error) {
	p, err := b.participantByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	slots, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}

	agg, err := booking.NewBooking(b.services, p.ID, slots)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}

	for i, c := range agg.Candidates() {
		if err := b.checkAvailable(ctx, i+1, c); err != nil {
			return nil, err
		}
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), agg)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	slog.Info("booking submitted",
		"booking_id", agg.ID(),
		"participant_id", p.ID,
		"candidates", len(agg.Candidates()))

	return &SubmitResult{
		BookingID:  agg.ID(),
		Status:     agg.Status(),
		Candidates: agg.Candidates(),
	}, nil
}

// Approve confirms one preference. The calendar event is created first; if the
// conditional status update then loses a race or fails, the event is removed
// again so no orphan survives.
func (b *bookingCommandsImpl) Approve(ctx context.Context, id uuid.UUID, req reqdto.ApproveBookingRequest) (*ResolutionResult, error) {
	agg, err := b.loadBooking(ctx, id, booking.StatusPending)
	if err != nil {
		return nil, err
	}

	chosen, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}
	slot, err := agg.CandidateMatching(chosen)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}

	if err := b.checkAvailable(ctx, candidateIndex(agg, slot), slot); err != nil {
		return nil, err
	}

	p, err := b.uow.CommandReads().ParticipantByID(ctx, agg.ParticipantID())
	if err != nil {
		return nil, err
	}

	eventID, err := b.calendar.CreateEvent(ctx, shared.EventRequest{
		BookingID:     agg.ID(),
		Summary:       b.eventTitle,
		Description:   b.eventDescription(p),
		Slot:          slot,
		AttendeeName:  p.Name,
		AttendeeEmail: p.Email,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCalendarUnavailable)
	}

	if err := agg.Confirm(slot, eventID, b.services.Clock.Now()); err != nil {
		b.compensate(ctx, agg.ID(), eventID)
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}

	updated, err := b.persistResolution(ctx, agg, booking.StatusPending)
	if err != nil || !updated {
		b.compensate(ctx, agg.ID(), eventID)
		if err != nil {
			return nil, err
		}
		return nil, ErrBookingNotFound
	}

	slog.Info("booking approved", "booking_id", agg.ID(), "event_id", eventID, "start", slot.Start)

	outcome := b.messenger.send(ctx, notification.KindConfirmation, recipient(p), b.values(p, &slot))

	return &ResolutionResult{
		BookingID:    agg.ID(),
		Status:       agg.Status(),
		Selected:     agg.Selected(),
		EventID:      eventID,
		Notification: &outcome,
	}, nil
}

func (b *bookingCommandsImpl) Reject(ctx context.Context, id uuid.UUID) (*ResolutionResult, error) {
	agg, err := b.loadBooking(ctx, id, booking.StatusPending)
	if err != nil {
		return nil, err
	}

	if err := agg.Reject(b.services.Clock.Now()); err != nil {
		return nil, ErrBookingNotFound
	}

	updated, err := b.persistResolution(ctx, agg, booking.StatusPending)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrBookingNotFound
	}

	slog.Info("booking rejected", "booking_id", agg.ID())
	return &ResolutionResult{BookingID: agg.ID(), Status: agg.Status()}, nil
}

// Remove cancels a confirmed booking. The calendar delete is best effort: a
// session that was already removed by hand must still be cancellable.
func (b *bookingCommandsImpl) Remove(ctx context.Context, id uuid.UUID) (*ResolutionResult, error) {
	agg, err := b.loadBooking(ctx, id, booking.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	eventID := agg.EventID()
	slot := *agg.Selected()

	if err := b.calendar.DeleteEvent(ctx, eventID); err != nil {
		slog.Warn("calendar event not deleted; the slot stays busy until it is removed by hand",
			"booking_id", agg.ID(), "event_id", eventID, "error", err.Error())
	}

	if err := agg.Remove(b.services.Clock.Now()); err != nil {
		return nil, ErrBookingNotFound
	}

	updated, err := b.persistResolution(ctx, agg, booking.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrBookingNotFound
	}

	slog.Info("booking removed", "booking_id", agg.ID(), "event_id", eventID)

	var outcome NotificationOutcome
	p, err := b.uow.CommandReads().ParticipantByID(ctx, agg.ParticipantID())
	if err != nil {
		slog.Warn("cancellation not sent", "booking_id", agg.ID(), "error", err.Error())
	} else {
		outcome = b.messenger.send(ctx, notification.KindCancellation, recipient(p), b.values(p, &slot))
	}

	return &ResolutionResult{
		BookingID:    agg.ID(),
		Status:       agg.Status(),
		Notification: &outcome,
	}, nil
}

func (b *bookingCommandsImpl) participantByToken(ctx context.Context, token string) (*shared.ParticipantSnapshot, error) {
	p, err := b.uow.CommandReads().ParticipantByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

// loadBooking returns NotFound both for unknown ids and for bookings that are
// no longer in the expected status.
func (b *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID, expected booking.Status) (*booking.Booking, error) {
	snap, err := b.uow.CommandReads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if snap.Status != expected {
		return nil, ErrBookingNotFound
	}
	return snap.ToDomain(), nil
}

func (b *bookingCommandsImpl) persistResolution(ctx context.Context, agg *booking.Booking, expected booking.Status) (bool, error) {
	var updated bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Bookings().UpdateResolution(ctx, tx.DB(), agg, expected)
		return err
	})
	return updated, err
}

// checkAvailable maps the oracle verdict for one preference to a command
// error carrying its position.
func (b *bookingCommandsImpl) checkAvailable(ctx context.Context, index int, slot availability.Interval) error {
	status, err := b.oracle.Check(ctx, slot)
	if err != nil {
		cerr := &booking.CandidateError{Index: index, Err: err}
		if errs.Is(err, shared.ErrBusyLookupFailed) {
			return errs.Mark(cerr, ErrCalendarUnavailable)
		}
		return cerr
	}

	switch status {
	case availability.StatusPast:
		return errs.Mark(&booking.CandidateError{Index: index, Err: booking.ErrSlotInPast}, ErrInvalidCandidate)
	case availability.StatusUnavailable:
		return errs.Mark(&booking.CandidateError{Index: index, Err: ErrSlotUnavailable}, ErrSlotUnavailable)
	}
	return nil
}

func (b *bookingCommandsImpl) compensate(ctx context.Context, bookingID uuid.UUID, eventID string) {
	if err := b.calendar.DeleteEvent(context.WithoutCancel(ctx), eventID); err != nil {
		slog.Error("orphan calendar event left behind",
			"booking_id", bookingID,
			"event_id", eventID,
			"error", err.Error())
		return
	}
	slog.Warn("calendar event rolled back", "booking_id", bookingID, "event_id", eventID)
}

func (b *bookingCommandsImpl) eventDescription(p *shared.ParticipantSnapshot) string {
	return fmt.Sprintf("Participant: %s <%s>\nConsent form: %s", p.Name, p.Email, b.links.ConsentURL())
}

func (b *bookingCommandsImpl) values(p *shared.ParticipantSnapshot, slot *availability.Interval) notification.Values {
	v := notification.Values{
		Name:        p.Name,
		Link:        b.links.InviteURL(p.Token),
		ConsentLink: b.links.ConsentURL(),
	}
	if slot != nil {
		v.Slot = notification.FormatSlot(*slot, b.services.Window.Location())
	}
	return v
}

func recipient(p *shared.ParticipantSnapshot) notification.Recipient {
	return notification.Recipient{Name: p.Name, Email: p.Email}
}

func candidateIndex(agg *booking.Booking, slot availability.Interval) int {
	for i, c := range agg.Candidates() {
		if c.Equal(slot) {
			return i + 1
		}
	}
	return 0
}
