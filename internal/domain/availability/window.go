package availability

import (
	"time"

	"study-booking/internal/pkg/errs"
)

const (
	SlotDuration = time.Hour
	DaysPerWeek  = 7
)

var (
	ErrInvalidWindow    = errs.New("invalid bookable window")
	ErrWeekOutOfRange   = errs.New("week offset out of range")
	ErrInvalidDuration  = errs.New("slot must last exactly one hour")
	ErrOutsideWindow    = errs.New("slot is outside the bookable hours")
	ErrBeyondHorizon    = errs.New("slot is too far in the future")
	ErrMissingLocation  = errs.New("window location is required")
	ErrInvalidWeekCount = errs.New("max weeks must be positive")
)

// Window is the bookable part of every day plus the forward horizon.
type Window struct {
	loc          *time.Location
	dayStartHour int
	dayEndHour   int
	maxWeeks     int
}

func NewWindow(loc *time.Location, dayStartHour, dayEndHour, maxWeeks int) (Window, error) {
	if loc == nil {
		return Window{}, ErrMissingLocation
	}
	if dayStartHour < 0 || dayEndHour > 24 || dayEndHour-dayStartHour < 1 {
		return Window{}, ErrInvalidWindow
	}
	if maxWeeks < 1 {
		return Window{}, ErrInvalidWeekCount
	}
	return Window{loc: loc, dayStartHour: dayStartHour, dayEndHour: dayEndHour, maxWeeks: maxWeeks}, nil
}

func (w Window) Location() *time.Location { return w.loc }
func (w Window) DayStartHour() int        { return w.dayStartHour }
func (w Window) DayEndHour() int          { return w.dayEndHour }
func (w Window) MaxWeeks() int            { return w.maxWeeks }

func (w Window) startOfDay(t time.Time) time.Time {
	local := t.In(w.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.loc)
}

// Horizon is the first instant that can no longer be booked.
func (w Window) Horizon(now time.Time) time.Time {
	day := w.startOfDay(now)
	return time.Date(day.Year(), day.Month(), day.Day()+DaysPerWeek*w.maxWeeks, 0, 0, 0, 0, w.loc)
}

// WeekStart returns local midnight of the first day shown for the given page.
func (w Window) WeekStart(now time.Time, offset int) (time.Time, error) {
	if offset < 0 || offset >= w.maxWeeks {
		return time.Time{}, ErrWeekOutOfRange
	}
	day := w.startOfDay(now)
	return time.Date(day.Year(), day.Month(), day.Day()+DaysPerWeek*offset, 0, 0, 0, 0, w.loc), nil
}

// DaySlots lists the hourly slots of the local day containing t.
func (w Window) DaySlots(t time.Time) []Interval {
	day := w.startOfDay(t)
	slots := make([]Interval, 0, w.dayEndHour-w.dayStartHour)
	for h := w.dayStartHour; h+1 <= w.dayEndHour; h++ {
		start := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, w.loc)
		slots = append(slots, Interval{Start: start, End: start.Add(SlotDuration)})
	}
	return slots
}

// Validate checks the shape of a requested slot: one hour long, within the
// daily bookable hours and before the horizon. Past slots are the caller's
// concern since they depend on the moment of the check.
func (w Window) Validate(slot Interval, now time.Time) error {
	if slot.Duration() != SlotDuration {
		return ErrInvalidDuration
	}
	day := w.startOfDay(slot.Start)
	open := time.Date(day.Year(), day.Month(), day.Day(), w.dayStartHour, 0, 0, 0, w.loc)
	closing := time.Date(day.Year(), day.Month(), day.Day(), w.dayEndHour, 0, 0, 0, w.loc)
	if slot.Start.Before(open) || slot.End.After(closing) {
		return ErrOutsideWindow
	}
	if slot.End.After(w.Horizon(now)) {
		return ErrBeyondHorizon
	}
	return nil
}
