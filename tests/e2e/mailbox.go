//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"study-booking/internal/domain/notification"
)

// Mailbox records every message instead of delivering it.
type Mailbox struct {
	mu       sync.Mutex
	messages []notification.Message
	fail     bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Send(_ context.Context, msg notification.Message) (notification.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return notification.Delivery{}, fmt.Errorf("mailbox: delivery disabled")
	}
	m.messages = append(m.messages, msg)
	return notification.Delivery{Channel: "mailbox", MessageID: fmt.Sprintf("msg-%d", len(m.messages))}, nil
}

// SetFailing makes Send fail until cleared.
func (m *Mailbox) SetFailing(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

func (m *Mailbox) Messages(kind notification.Kind) []notification.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []notification.Message
	for _, msg := range m.messages {
		if msg.Kind == kind {
			out = append(out, msg)
		}
	}
	return out
}

func (m *Mailbox) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
	m.fail = false
}
