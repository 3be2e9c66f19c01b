package calendar

import (
	"context"
	"sort"
	"sync"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProviderDown = errs.New("calendar provider unavailable")

// MemoryProvider keeps events in process. It backs local dry runs and tests;
// created events count as busy time like they would on a real calendar.
type MemoryProvider struct {
	mu     sync.Mutex
	events map[string]map[string]Event // calendar id -> event id -> event
	busy   map[string][]availability.Interval
	down   map[string]bool
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		events: make(map[string]map[string]Event),
		busy:   make(map[string][]availability.Interval),
		down:   make(map[string]bool),
	}
}

func (p *MemoryProvider) Name() string { return "memory" }

// AddBusy records time that is busy for reasons outside this system.
func (p *MemoryProvider) AddBusy(calendarID string, slot availability.Interval) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy[calendarID] = append(p.busy[calendarID], slot)
}

// SetDown makes every call against calendarID fail until cleared.
func (p *MemoryProvider) SetDown(calendarID string, down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.down[calendarID] = down
}

// Reset drops every event, busy block and outage.
func (p *MemoryProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = make(map[string]map[string]Event)
	p.busy = make(map[string][]availability.Interval)
	p.down = make(map[string]bool)
}

func (p *MemoryProvider) Events(calendarID string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, 0, len(p.events[calendarID]))
	for _, ev := range p.events[calendarID] {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot.Start.Before(out[j].Slot.Start) })
	return out
}

func (p *MemoryProvider) FreeBusy(ctx context.Context, calendarID string, window availability.Interval) ([]availability.Interval, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down[calendarID] {
		return nil, ErrProviderDown
	}

	var out []availability.Interval
	for _, b := range p.busy[calendarID] {
		if b.Overlaps(window) {
			out = append(out, b)
		}
	}
	for _, ev := range p.events[calendarID] {
		if ev.Slot.Overlaps(window) {
			out = append(out, ev.Slot)
		}
	}
	return out, nil
}

func (p *MemoryProvider) Insert(ctx context.Context, calendarID string, ev Event) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down[calendarID] {
		return "", ErrProviderDown
	}

	id := uuid.NewString()
	if p.events[calendarID] == nil {
		p.events[calendarID] = make(map[string]Event)
	}
	ev.Slot = ev.Slot.UTC()
	p.events[calendarID][id] = ev
	return id, nil
}

func (p *MemoryProvider) Delete(ctx context.Context, calendarID, eventID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down[calendarID] {
		return ErrProviderDown
	}

	if _, ok := p.events[calendarID][eventID]; !ok {
		return ErrEventNotFound
	}
	delete(p.events[calendarID], eventID)
	return nil
}
