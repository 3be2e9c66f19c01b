package availability

import "time"

type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusUnavailable SlotStatus = "unavailable"
	StatusPast        SlotStatus = "past"
)

func (s SlotStatus) String() string { return string(s) }

// QueryPadding widens every external free/busy query so events ending or
// starting exactly at a slot boundary are still returned.
const QueryPadding = time.Minute

// Classify decides the status of a slot given the blocked ranges and the busy
// ranges reported by the external calendar.
func Classify(slot Interval, now time.Time, blocked, busy []Interval) SlotStatus {
	if !slot.Start.After(now) {
		return StatusPast
	}
	if slot.OverlapsAny(blocked) || slot.OverlapsAny(busy) {
		return StatusUnavailable
	}
	return StatusAvailable
}
