//go:build unit

package calendar_test

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/infra/calendar"
	"study-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// davServer answers calendar queries on /cal/ with a fixed set of objects
// and records writes.
type davServer struct {
	mu        sync.Mutex
	objects   []string
	query     string
	puts      map[string]string
	deletes   []string
	delStatus int
}

func (s *davServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, _ := io.ReadAll(r.Body)

	switch {
	case r.Method == "REPORT" && r.URL.Path == "/cal/" && r.Header.Get("Depth") == "1":
		s.query = string(body)
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusMultiStatus)
		_, _ = w.Write(multistatus(s.objects))
	case r.Method == http.MethodPut:
		s.puts[r.URL.Path] = string(body)
		w.Header().Set("ETag", `"v1"`)
		w.WriteHeader(http.StatusCreated)
	case r.Method == http.MethodDelete:
		s.deletes = append(s.deletes, r.URL.Path)
		w.WriteHeader(s.delStatus)
	default:
		http.NotFound(w, r)
	}
}

func multistatus(objects []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	buf.WriteString(`<d:multistatus xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">`)
	for i, obj := range objects {
		fmt.Fprintf(&buf, `<d:response><d:href>/cal/%d.ics</d:href><d:propstat><d:prop><c:calendar-data>`, i)
		_ = xml.EscapeText(&buf, []byte(obj))
		buf.WriteString(`</c:calendar-data></d:prop><d:status>HTTP/1.1 200 OK</d:status></d:propstat></d:response>`)
	}
	buf.WriteString(`</d:multistatus>`)
	return buf.Bytes()
}

func vcalendar(events ...string) string {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"}
	for _, ev := range events {
		lines = append(lines, "BEGIN:VEVENT", strings.TrimSpace(ev), "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func vevent(props ...string) string {
	return strings.Join(props, "\r\n")
}

func newCalDAVProvider(t *testing.T, objects ...string) (*calendar.CalDAVProvider, *davServer) {
	t.Helper()
	dav := &davServer{objects: objects, puts: map[string]string{}, delStatus: http.StatusNoContent}
	srv := httptest.NewServer(dav)
	t.Cleanup(srv.Close)

	p, err := calendar.NewCalDAVProvider(discardLogger(), srv.URL, "user", "secret", time.Second)
	require.NoError(t, err)
	return p, dav
}

// Monday 2026-03-02, 14:00-18:00 UTC.
var davWindow = availability.Interval{
	Start: time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC),
	End:   time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC),
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, time.UTC)
}

func TestCalDAVProvider_FreeBusy(t *testing.T) {
	// Weekly on Mondays 15:00-16:00 since 2026-01-05.
	weekly := []string{
		"UID:weekly",
		"DTSTAMP:20260101T000000Z",
		"DTSTART:20260105T150000Z",
		"DTEND:20260105T160000Z",
		"RRULE:FREQ=WEEKLY",
	}
	with := func(base []string, extra ...string) string {
		return vevent(append(append([]string{}, base...), extra...)...)
	}

	tests := []struct {
		name    string
		objects []string
		want    []availability.Interval
	}{
		{
			name:    "recurring event expands into the window",
			objects: []string{vcalendar(with(weekly))},
			want:    []availability.Interval{{Start: at(15, 0), End: at(16, 0)}},
		},
		{
			name:    "excluded occurrence is free",
			objects: []string{vcalendar(with(weekly, "EXDATE:20260223T150000Z,20260302T150000Z"))},
			want:    nil,
		},
		{
			name: "moved occurrence blocks its new time only",
			objects: []string{vcalendar(
				with(weekly),
				vevent(
					"UID:weekly",
					"DTSTAMP:20260101T000000Z",
					"RECURRENCE-ID:20260302T150000Z",
					"DTSTART:20260302T170000Z",
					"DTEND:20260302T173000Z",
				),
			)},
			want: []availability.Interval{{Start: at(17, 0), End: at(17, 30)}},
		},
		{
			name: "cancelled occurrence is free",
			objects: []string{vcalendar(
				with(weekly),
				vevent(
					"UID:weekly",
					"DTSTAMP:20260101T000000Z",
					"RECURRENCE-ID:20260302T150000Z",
					"DTSTART:20260302T150000Z",
					"DTEND:20260302T160000Z",
					"STATUS:CANCELLED",
				),
			)},
			want: nil,
		},
		{
			name: "duration without end",
			objects: []string{vcalendar(vevent(
				"UID:standup",
				"DTSTAMP:20260101T000000Z",
				"DTSTART:20260302T140000Z",
				"DURATION:PT45M",
			))},
			want: []availability.Interval{{Start: at(14, 0), End: at(14, 45)}},
		},
		{
			name: "transparent event is free",
			objects: []string{vcalendar(vevent(
				"UID:reminder",
				"DTSTAMP:20260101T000000Z",
				"DTSTART:20260302T150000Z",
				"DTEND:20260302T160000Z",
				"TRANSP:TRANSPARENT",
			))},
			want: nil,
		},
		{
			name: "events across objects are merged",
			objects: []string{
				vcalendar(vevent("UID:a", "DTSTAMP:20260101T000000Z", "DTSTART:20260302T140000Z", "DTEND:20260302T143000Z")),
				vcalendar(vevent("UID:b", "DTSTAMP:20260101T000000Z", "DTSTART:20260302T163000Z", "DTEND:20260302T170000Z")),
			},
			want: []availability.Interval{
				{Start: at(14, 0), End: at(14, 30)},
				{Start: at(16, 30), End: at(17, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, dav := newCalDAVProvider(t, tt.objects...)

			busy, err := p.FreeBusy(context.Background(), "/cal/", davWindow)

			require.NoError(t, err)
			assert.Equal(t, tt.want, busy)
			assert.Contains(t, dav.query, "allprop")
		})
	}
}

func TestCalDAVProvider_FreeBusy_UnreadableEvent(t *testing.T) {
	tests := []struct {
		name  string
		event string
	}{
		{name: "bad start", event: vevent("UID:x", "DTSTAMP:20260101T000000Z", "DTSTART:tomorrow", "DTEND:20260302T160000Z")},
		{name: "missing start", event: vevent("UID:x", "DTSTAMP:20260101T000000Z", "DTEND:20260302T160000Z")},
		{name: "bad rule", event: vevent("UID:x", "DTSTAMP:20260101T000000Z", "DTSTART:20260105T150000Z", "DTEND:20260105T160000Z", "RRULE:FREQ=SOMETIMES")},
		{name: "bad exdate", event: vevent("UID:x", "DTSTAMP:20260101T000000Z", "DTSTART:20260105T150000Z", "DTEND:20260105T160000Z", "RRULE:FREQ=WEEKLY", "EXDATE:soon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := vcalendar(vevent("UID:ok", "DTSTAMP:20260101T000000Z", "DTSTART:20260302T150000Z", "DTEND:20260302T160000Z"))
			p, _ := newCalDAVProvider(t, ok, vcalendar(tt.event))

			busy, err := p.FreeBusy(context.Background(), "/cal/", davWindow)

			require.Error(t, err)
			assert.Nil(t, busy)
		})
	}
}

func TestCalDAVProvider_Insert(t *testing.T) {
	p, dav := newCalDAVProvider(t)

	id, err := p.Insert(context.Background(), "/cal/", calendar.Event{
		UID:           "booking-1",
		Summary:       "User Study",
		Slot:          slotAt(14),
		AttendeeName:  "Ada",
		AttendeeEmail: "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "/cal/booking-1.ics", id)
	body := dav.puts["/cal/booking-1.ics"]
	assert.Contains(t, body, "UID:booking-1")
	assert.Contains(t, body, "DTSTART:20260303T140000Z")
	assert.Contains(t, body, "DTEND:20260303T150000Z")
	assert.Contains(t, body, "mailto:ada@example.com")
}

func TestCalDAVProvider_Delete(t *testing.T) {
	t.Run("deletes the object", func(t *testing.T) {
		p, dav := newCalDAVProvider(t)

		require.NoError(t, p.Delete(context.Background(), "/cal/", "/cal/booking-1.ics"))
		assert.Equal(t, []string{"/cal/booking-1.ics"}, dav.deletes)
	})

	t.Run("event of another calendar is not touched", func(t *testing.T) {
		p, dav := newCalDAVProvider(t)

		err := p.Delete(context.Background(), "/cal/", "/other/booking-1.ics")
		assert.True(t, errs.Is(err, calendar.ErrEventNotFound))
		assert.Empty(t, dav.deletes)
	})

	t.Run("missing object", func(t *testing.T) {
		p, dav := newCalDAVProvider(t)
		dav.delStatus = http.StatusNotFound

		err := p.Delete(context.Background(), "/cal/", "/cal/booking-1.ics")
		assert.True(t, errs.Is(err, calendar.ErrEventNotFound))
	})

	t.Run("server error", func(t *testing.T) {
		p, dav := newCalDAVProvider(t)
		dav.delStatus = http.StatusInternalServerError

		err := p.Delete(context.Background(), "/cal/", "/cal/booking-1.ics")
		require.Error(t, err)
		assert.False(t, errs.Is(err, calendar.ErrEventNotFound))
	})
}
