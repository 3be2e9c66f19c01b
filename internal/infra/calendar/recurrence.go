package calendar

import (
	"strings"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"

	"github.com/emersion/go-ical"
)

// busyIntervals turns the VEVENTs of a calendar query into busy time inside
// window. Recurring masters are expanded, EXDATEs and RECURRENCE-ID overrides
// are honoured. An event that cannot be read is an error, never free time.
func busyIntervals(events []ical.Event, window availability.Interval) ([]availability.Interval, error) {
	overridden := make(map[string]map[int64]bool)
	for _, ev := range events {
		prop := ev.Props.Get(ical.PropRecurrenceID)
		if prop == nil {
			continue
		}
		rid, err := prop.DateTime(time.UTC)
		if err != nil {
			return nil, errs.Wrapf(err, "event %q has an unreadable RECURRENCE-ID", uid(ev))
		}
		if overridden[uid(ev)] == nil {
			overridden[uid(ev)] = make(map[int64]bool)
		}
		overridden[uid(ev)][rid.Unix()] = true
	}

	var busy []availability.Interval
	for _, ev := range events {
		if !blocks(ev) {
			continue
		}
		span, err := eventSpan(ev)
		if err != nil {
			return nil, errs.Wrapf(err, "event %q", uid(ev))
		}

		if ev.Props.Get(ical.PropRecurrenceID) != nil {
			if span.Overlaps(window) {
				busy = append(busy, span)
			}
			continue
		}

		occurrences, err := expand(ev, span, window, overridden[uid(ev)])
		if err != nil {
			return nil, errs.Wrapf(err, "event %q", uid(ev))
		}
		busy = append(busy, occurrences...)
	}
	return busy, nil
}

// expand lists the occurrences of a master event that overlap window.
// EXDATE and RDATE are read here since they may carry comma separated lists.
func expand(ev ical.Event, first availability.Interval, window availability.Interval, skip map[int64]bool) ([]availability.Interval, error) {
	exdates, err := dateList(ev, ical.PropExceptionDates)
	if err != nil {
		return nil, err
	}
	rdates, err := dateList(ev, ical.PropRecurrenceDates)
	if err != nil {
		return nil, err
	}

	rule := ical.NewComponent(ev.Name)
	for name, props := range ev.Props {
		if name == ical.PropExceptionDates || name == ical.PropRecurrenceDates {
			continue
		}
		rule.Props[name] = props
	}
	set, err := rule.RecurrenceSet(time.UTC)
	if err != nil {
		return nil, errs.Wrap(err, "unreadable recurrence rule")
	}

	dur := first.End.Sub(first.Start)
	var starts []time.Time
	if set == nil {
		starts = append(starts, first.Start)
		starts = append(starts, rdates...)
	} else {
		for _, rd := range rdates {
			set.RDate(rd)
		}
		starts = set.Between(window.Start.Add(-dur), window.End, true)
	}

	for _, ex := range exdates {
		if skip == nil {
			skip = make(map[int64]bool)
		}
		skip[ex.Unix()] = true
	}

	var out []availability.Interval
	for _, start := range starts {
		if skip[start.Unix()] {
			continue
		}
		occ := availability.Interval{Start: start.UTC(), End: start.Add(dur).UTC()}
		if occ.Overlaps(window) {
			out = append(out, occ)
		}
	}
	return out, nil
}

func eventSpan(ev ical.Event) (availability.Interval, error) {
	if ev.Props.Get(ical.PropDateTimeStart) == nil {
		return availability.Interval{}, errs.New("missing DTSTART")
	}
	start, err := ev.DateTimeStart(time.UTC)
	if err != nil {
		return availability.Interval{}, errs.Wrap(err, "unreadable DTSTART")
	}
	end, err := ev.DateTimeEnd(time.UTC)
	if err != nil {
		return availability.Interval{}, errs.Wrap(err, "unreadable DTEND or DURATION")
	}
	if end.Before(start) {
		return availability.Interval{}, errs.Newf("ends before it starts: %s < %s", end, start)
	}
	return availability.Interval{Start: start.UTC(), End: end.UTC()}, nil
}

func dateList(ev ical.Event, name string) ([]time.Time, error) {
	var out []time.Time
	for _, prop := range ev.Props[name] {
		for _, v := range strings.Split(prop.Value, ",") {
			single := prop
			single.Value = strings.TrimSpace(v)
			t, err := single.DateTime(time.UTC)
			if err != nil {
				return nil, errs.Wrapf(err, "unreadable %s", name)
			}
			out = append(out, t)
		}
	}
	return out, nil
}

// blocks reports whether the event takes up time: transparent and cancelled
// events do not.
func blocks(ev ical.Event) bool {
	if prop := ev.Props.Get(ical.PropTransparency); prop != nil && strings.EqualFold(prop.Value, "TRANSPARENT") {
		return false
	}
	if prop := ev.Props.Get(ical.PropStatus); prop != nil && strings.EqualFold(prop.Value, string(ical.EventCancelled)) {
		return false
	}
	return true
}

func uid(ev ical.Event) string {
	if prop := ev.Props.Get(ical.PropUID); prop != nil {
		return prop.Value
	}
	return ""
}
