package calendar

import (
	"context"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"
)

var (
	ErrNoTargets       = errs.New("no calendar targets configured")
	ErrEventNotFound   = errs.New("calendar event not found")
	ErrUnknownProvider = errs.New("unknown calendar provider")
)

// Event is the provider-neutral shape of a study session.
type Event struct {
	UID           string
	Summary       string
	Description   string
	Slot          availability.Interval
	AttendeeName  string
	AttendeeEmail string
}

// Provider talks to one calendar backend. calendarID is backend specific: a
// Google calendar id, or a CalDAV calendar name or path.
type Provider interface {
	Name() string
	FreeBusy(ctx context.Context, calendarID string, window availability.Interval) ([]availability.Interval, error)
	Insert(ctx context.Context, calendarID string, ev Event) (string, error)
	Delete(ctx context.Context, calendarID, eventID string) error
}
