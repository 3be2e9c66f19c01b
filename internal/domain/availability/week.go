package availability

import "time"

type Slot struct {
	Interval
	Status SlotStatus
}

type Day struct {
	Date  time.Time
	Slots []Slot
}

// Week is one page of the participant-facing grid.
type Week struct {
	Window   Window
	Offset   int
	Start    time.Time
	End      time.Time
	Days     []Day
	Degraded bool
	HasPrev  bool
	HasNext  bool
}

// Range returns the span covered by the bookable slots of the page.
func (w Window) Range(weekStart time.Time) Interval {
	last := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+DaysPerWeek-1, w.dayEndHour, 0, 0, 0, w.loc)
	first := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), w.dayStartHour, 0, 0, 0, w.loc)
	return Interval{Start: first, End: last}
}

// BuildWeek lays out the grid for a page. When degraded is true the busy list
// is unknown and every future slot is reported unavailable.
func (w Window) BuildWeek(weekStart, now time.Time, offset int, blocked, busy []Interval, degraded bool) *Week {
	week := &Week{
		Window:   w,
		Offset:   offset,
		Start:    weekStart,
		End:      time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+DaysPerWeek, 0, 0, 0, 0, w.loc),
		Days:     make([]Day, 0, DaysPerWeek),
		Degraded: degraded,
		HasPrev:  offset > 0,
		HasNext:  offset+1 < w.maxWeeks,
	}

	for d := 0; d < DaysPerWeek; d++ {
		date := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+d, 0, 0, 0, 0, w.loc)
		intervals := w.DaySlots(date)
		day := Day{Date: date, Slots: make([]Slot, len(intervals))}
		for i, iv := range intervals {
			status := Classify(iv, now, blocked, busy)
			if degraded && status == StatusAvailable {
				status = StatusUnavailable
			}
			day.Slots[i] = Slot{Interval: iv, Status: status}
		}
		week.Days = append(week.Days, day)
	}
	return week
}
