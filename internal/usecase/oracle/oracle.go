package oracle

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"
)

// Oracle combines admin blocks with the external calendar. It fails closed: a
// slot whose status cannot be established is reported unavailable.
type Oracle struct {
	calendar shared.BusyCalendar
	blocked  shared.BlockedSlotReader
	window   availability.Window
	clock    clock.Clock
}

func NewOracle(calendar shared.BusyCalendar, blocked shared.BlockedSlotReader, window availability.Window, clk clock.Clock) *Oracle {
	return &Oracle{
		calendar: calendar,
		blocked:  blocked,
		window:   window,
		clock:    clk,
	}
}

// Check returns the status of a single slot. Any lookup error comes back with
// StatusUnavailable so callers that ignore the error still refuse the slot.
func (o *Oracle) Check(ctx context.Context, slot availability.Interval) (availability.SlotStatus, error) {
	now := o.clock.Now()
	if !slot.Start.After(now) {
		return availability.StatusPast, nil
	}

	blocked, err := o.blocked.Overlapping(ctx, slot)
	if err != nil {
		return availability.StatusUnavailable, errs.Mark(err, shared.ErrBlockedLookupFailed)
	}
	if slot.OverlapsAny(blocked) {
		return availability.StatusUnavailable, nil
	}

	busy, err := o.calendar.Busy(ctx, slot.Pad(availability.QueryPadding))
	if err != nil {
		slog.Warn("busy lookup failed, treating slot as unavailable",
			"start", slot.Start, "error", err.Error())
		return availability.StatusUnavailable, errs.Mark(err, shared.ErrBusyLookupFailed)
	}

	return availability.Classify(slot, now, blocked, busy), nil
}

// Week builds one page of the grid with a single blocked-slot read and a
// single free/busy query. A failed free/busy query degrades the page instead
// of failing it.
func (o *Oracle) Week(ctx context.Context, offset int) (*availability.Week, error) {
	now := o.clock.Now()
	start, err := o.window.WeekStart(now, offset)
	if err != nil {
		return nil, err
	}
	rng := o.window.Range(start)

	blocked, err := o.blocked.Overlapping(ctx, rng)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrBlockedLookupFailed)
	}

	busy, err := o.calendar.Busy(ctx, rng.Pad(availability.QueryPadding))
	degraded := err != nil
	if degraded {
		slog.Warn("busy lookup failed, week shown as unavailable",
			"week_offset", offset, "error", err.Error())
	}

	return o.window.BuildWeek(start, now, offset, blocked, busy, degraded), nil
}
