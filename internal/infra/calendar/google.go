package calendar

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/errs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const oobRedirectURL = "urn:ietf:wg:oauth:2.0:oob"

// GoogleProvider uses the Calendar API v3 with a stored OAuth2 token.
type GoogleProvider struct {
	service *calendar.Service
	logger  *slog.Logger
}

func NewGoogleProvider(ctx context.Context, logger *slog.Logger, clientID, clientSecret, tokenFile string) (*GoogleProvider, error) {
	config, err := OAuthConfig(clientID, clientSecret)
	if err != nil {
		return nil, err
	}

	token, err := TokenFromFile(tokenFile)
	if err != nil {
		return nil, errs.Wrapf(err, "could not load token from %s; run the google-auth command first", tokenFile)
	}

	return NewGoogleProviderWithOptions(ctx, logger, option.WithHTTPClient(config.Client(ctx, token)))
}

// NewGoogleProviderWithOptions builds the provider from raw client options,
// e.g. a custom endpoint and HTTP client.
func NewGoogleProviderWithOptions(ctx context.Context, logger *slog.Logger, opts ...option.ClientOption) (*GoogleProvider, error) {
	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar service")
	}

	return &GoogleProvider{service: service, logger: logger}, nil
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) FreeBusy(ctx context.Context, calendarID string, window availability.Interval) ([]availability.Interval, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin: window.Start.UTC().Format(time.RFC3339),
		TimeMax: window.End.UTC().Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := p.service.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "freebusy query failed")
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, errs.Newf("freebusy response has no entry for %s", calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, errs.Newf("freebusy for %s: %s", calendarID, cal.Errors[0].Reason)
	}

	busy := make([]availability.Interval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, errs.Wrap(err, "invalid busy start")
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, errs.Wrap(err, "invalid busy end")
		}
		busy = append(busy, availability.Interval{Start: start, End: end})
	}

	p.logger.Debug("fetched busy intervals", "calendar_id", calendarID, "count", len(busy))
	return busy, nil
}

func (p *GoogleProvider) Insert(ctx context.Context, calendarID string, ev Event) (string, error) {
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{DateTime: ev.Slot.Start.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		End:         &calendar.EventDateTime{DateTime: ev.Slot.End.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		Attendees: []*calendar.EventAttendee{
			{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName},
		},
	}
	if ev.UID != "" {
		event.ICalUID = ev.UID
	}

	created, err := p.service.Events.Insert(calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return "", errs.Wrap(err, "event insert failed")
	}

	p.logger.Info("created calendar event", "calendar_id", calendarID, "event_id", created.Id)
	return created.Id, nil
}

func (p *GoogleProvider) Delete(ctx context.Context, calendarID, eventID string) error {
	err := p.service.Events.Delete(calendarID, eventID).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errs.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return errs.Mark(err, ErrEventNotFound)
		}
		return errs.Wrap(err, "event delete failed")
	}

	p.logger.Info("deleted calendar event", "calendar_id", calendarID, "event_id", eventID)
	return nil
}

// OAuthConfig is the installed-app configuration used both by the server and
// by the google-auth command.
func OAuthConfig(clientID, clientSecret string) (*oauth2.Config, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errs.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required for the google provider")
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  oobRedirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}, nil
}

func AuthURL(config *oauth2.Config) string {
	return config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func ExchangeCode(ctx context.Context, config *oauth2.Config, code string) (*oauth2.Token, error) {
	return config.Exchange(ctx, code)
}

func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return errs.Wrap(err, "unable to create token file")
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

func TokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "unable to open token file")
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, errs.Wrap(err, "unable to decode token file")
	}
	return tok, nil
}
