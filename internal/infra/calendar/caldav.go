package calendar

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"
)

const productID = "-//study-booking//EN"

// basicAuthTransport adds credentials and a user agent to every request.
type basicAuthTransport struct {
	username  string
	password  string
	transport http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	req.Header.Set("User-Agent", "study-booking/1.0")
	return t.transport.RoundTrip(req)
}

// CalDAVProvider works against any CalDAV server (iCloud, Fastmail, Nextcloud).
// Event ids are the object paths of the created .ics resources.
type CalDAVProvider struct {
	caldavClient *caldav.Client
	webdavClient *webdav.Client
	logger       *slog.Logger

	mu    sync.Mutex
	paths map[string]string // calendar id -> collection path
}

func NewCalDAVProvider(logger *slog.Logger, endpoint, username, password string, timeout time.Duration) (*CalDAVProvider, error) {
	if endpoint == "" {
		return nil, errs.New("CALDAV_URL is required for the caldav provider")
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &basicAuthTransport{
			username:  username,
			password:  password,
			transport: http.DefaultTransport,
		},
	}

	caldavClient, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create caldav client")
	}
	webdavClient, err := webdav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create webdav client")
	}

	return &CalDAVProvider{
		caldavClient: caldavClient,
		webdavClient: webdavClient,
		logger:       logger,
		paths:        make(map[string]string),
	}, nil
}

func (p *CalDAVProvider) Name() string { return "caldav" }

func (p *CalDAVProvider) FreeBusy(ctx context.Context, calendarID string, window availability.Interval) ([]availability.Interval, error) {
	calPath, err := p.resolve(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: ical.CompCalendar,
			Comps: []caldav.CalendarCompRequest{{
				Name:     ical.CompEvent,
				AllProps: true,
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: ical.CompCalendar,
			Comps: []caldav.CompFilter{{
				Name:  ical.CompEvent,
				Start: window.Start.UTC(),
				End:   window.End.UTC(),
			}},
		},
	}

	objects, err := p.caldavClient.QueryCalendar(ctx, calPath, query)
	if err != nil {
		return nil, errs.Wrap(err, "calendar query failed")
	}

	var busy []availability.Interval
	for _, obj := range objects {
		if obj.Data == nil {
			return nil, errs.Newf("calendar object %s has no data", obj.Path)
		}
		got, err := busyIntervals(obj.Data.Events(), window)
		if err != nil {
			return nil, errs.Wrapf(err, "calendar object %s", obj.Path)
		}
		busy = append(busy, got...)
	}

	p.logger.Debug("fetched busy intervals", "calendar", calPath, "count", len(busy))
	return busy, nil
}

func (p *CalDAVProvider) Insert(ctx context.Context, calendarID string, ev Event) (string, error) {
	calPath, err := p.resolve(ctx, calendarID)
	if err != nil {
		return "", err
	}

	uid := ev.UID
	if uid == "" {
		uid = uuid.NewString()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, toVEvent(uid, ev).Component)

	eventPath := path.Join(calPath, uid+".ics")
	if _, err := p.caldavClient.PutCalendarObject(ctx, eventPath, cal); err != nil {
		return "", errs.Wrap(err, "event create failed")
	}

	p.logger.Info("created calendar event", "calendar", calPath, "event_id", eventPath)
	return eventPath, nil
}

// Delete removes the object; eventID must be a path returned by Insert on the
// same calendar.
func (p *CalDAVProvider) Delete(ctx context.Context, calendarID, eventID string) error {
	calPath, err := p.resolve(ctx, calendarID)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(eventID, strings.TrimSuffix(calPath, "/")+"/") {
		return ErrEventNotFound
	}

	if err := p.webdavClient.RemoveAll(ctx, eventID); err != nil {
		if gone(err) {
			return errs.Mark(err, ErrEventNotFound)
		}
		return errs.Wrap(err, "event delete failed")
	}

	p.logger.Info("deleted calendar event", "calendar", calPath, "event_id", eventID)
	return nil
}

// resolve maps a calendar id to a collection path. A value starting with "/"
// is used as is; "primary" picks the first calendar of the account; anything
// else is matched against calendar names.
func (p *CalDAVProvider) resolve(ctx context.Context, calendarID string) (string, error) {
	if strings.HasPrefix(calendarID, "/") {
		return calendarID, nil
	}

	p.mu.Lock()
	cached, ok := p.paths[calendarID]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	principal, err := p.caldavClient.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", errs.Wrap(err, "failed to find principal path")
	}
	homeSet, err := p.caldavClient.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", errs.Wrap(err, "failed to find calendar home set")
	}
	calendars, err := p.caldavClient.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", errs.Wrap(err, "failed to find calendars")
	}

	found := ""
	for _, cal := range calendars {
		if calendarID == "primary" || cal.Name == calendarID {
			found = cal.Path
			break
		}
	}
	if found == "" {
		return "", errs.Newf("no calendar found with name %q", calendarID)
	}

	p.mu.Lock()
	p.paths[calendarID] = found
	p.mu.Unlock()
	return found, nil
}

func toVEvent(uid string, ev Event) *ical.Event {
	ve := ical.NewEvent()
	ve.Props.SetText(ical.PropUID, uid)
	ve.Props.SetText(ical.PropSummary, ev.Summary)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, ev.Slot.Start.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, ev.Slot.End.UTC())

	if ev.Description != "" {
		ve.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.AttendeeEmail != "" {
		attendee := ical.NewProp(ical.PropAttendee)
		attendee.SetText("mailto:" + ev.AttendeeEmail)
		if ev.AttendeeName != "" {
			attendee.Params.Set(ical.ParamCommonName, ev.AttendeeName)
		}
		ve.Props.Add(attendee)
	}
	return ve
}

// gone matches the status prefix go-webdav puts on HTTP errors.
func gone(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "404 ") || strings.HasPrefix(msg, "410 ")
}
