package shared

import (
	"context"
	"strings"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/notification"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BusyCalendar reports the busy ranges of the external calendar.
type BusyCalendar interface {
	Busy(ctx context.Context, window availability.Interval) ([]availability.Interval, error)
}

type EventRequest struct {
	BookingID     uuid.UUID
	Summary       string
	Description   string
	Slot          availability.Interval
	AttendeeName  string
	AttendeeEmail string
}

// CalendarSynchronizer mirrors confirmed bookings on the external calendar.
type CalendarSynchronizer interface {
	CreateEvent(ctx context.Context, req EventRequest) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type BlockedSlotReader interface {
	Overlapping(ctx context.Context, window availability.Interval) ([]availability.Interval, error)
}

// Notifier delivers a rendered message through whatever channel works.
type Notifier interface {
	Send(ctx context.Context, msg notification.Message) (notification.Delivery, error)
}

// Links builds the public URLs placed in messages and calendar events.
type Links struct {
	base string
}

func NewLinks(cfg config.Config) Links {
	return Links{base: strings.TrimRight(cfg.Server.HostBase, "/")}
}

func (l Links) InviteURL(token string) string {
	return l.base + "/invite/" + token
}

func (l Links) ConsentURL() string {
	return l.base + "/consent"
}

var (
	ErrBusyLookupFailed    = errs.New("external calendar lookup failed")
	ErrBlockedLookupFailed = errs.New("blocked slot lookup failed")
)

// AvailabilityOracle answers whether slots can be booked right now.
type AvailabilityOracle interface {
	Check(ctx context.Context, slot availability.Interval) (availability.SlotStatus, error)
	Week(ctx context.Context, offset int) (*availability.Week, error)
}
