package calendar

import (
	"context"
	"log/slog"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"
)

// Synchronizer mirrors bookings onto the study calendar. Writes are tried
// against each target in order and the first success wins. Busy reads every
// target, since an event may have landed on the fallback.
type Synchronizer struct {
	provider Provider
	targets  []string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewSynchronizer(provider Provider, targets []string, timeout time.Duration, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		provider: provider,
		targets:  dedupe(targets),
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *Synchronizer) Targets() []string {
	out := make([]string, len(s.targets))
	copy(out, s.targets)
	return out
}

// Busy merges the busy intervals of every target. Any target failing fails
// the whole lookup so a down calendar never reads as free time.
func (s *Synchronizer) Busy(ctx context.Context, window availability.Interval) ([]availability.Interval, error) {
	if len(s.targets) == 0 {
		return nil, ErrNoTargets
	}

	var busy []availability.Interval
	for _, target := range s.targets {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		got, err := s.provider.FreeBusy(callCtx, target, window)
		cancel()
		if err != nil {
			s.logger.Warn("calendar call failed",
				"op", "freebusy",
				"provider", s.provider.Name(),
				"target", target,
				"error", err.Error())
			return nil, errs.Wrapf(err, "calendar freebusy failed on %q", target)
		}
		busy = append(busy, got...)
	}
	return busy, nil
}

func (s *Synchronizer) CreateEvent(ctx context.Context, req shared.EventRequest) (string, error) {
	ev := Event{
		UID:           req.BookingID.String(),
		Summary:       req.Summary,
		Description:   req.Description,
		Slot:          req.Slot.UTC(),
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
	}

	var eventID string
	target, err := s.each(ctx, "insert", func(ctx context.Context, target string) error {
		var err error
		eventID, err = s.provider.Insert(ctx, target, ev)
		return err
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("calendar event created", "target", target, "event_id", eventID, "booking_id", req.BookingID)
	return eventID, nil
}

func (s *Synchronizer) DeleteEvent(ctx context.Context, eventID string) error {
	target, err := s.each(ctx, "delete", func(ctx context.Context, target string) error {
		return s.provider.Delete(ctx, target, eventID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("calendar event deleted", "target", target, "event_id", eventID)
	return nil
}

// each runs op per target under its own timeout and returns the target that
// succeeded. The last error is returned when all fail.
func (s *Synchronizer) each(ctx context.Context, op string, fn func(ctx context.Context, target string) error) (string, error) {
	if len(s.targets) == 0 {
		return "", ErrNoTargets
	}

	var lastErr error
	for _, target := range s.targets {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := fn(callCtx, target)
		cancel()
		if err == nil {
			return target, nil
		}

		s.logger.Warn("calendar call failed",
			"op", op,
			"provider", s.provider.Name(),
			"target", target,
			"error", err.Error())
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return "", errs.Wrapf(lastErr, "calendar %s failed on every target", op)
}

func dedupe(targets []string) []string {
	seen := make(map[string]bool, len(targets))
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// NewProvider builds the backend selected by CALENDAR_PROVIDER.
func NewProvider(ctx context.Context, cfg config.CalendarConfig, logger *slog.Logger) (Provider, error) {
	switch cfg.Provider {
	case "google":
		return NewGoogleProvider(ctx, logger, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleTokenFile)
	case "caldav":
		return NewCalDAVProvider(logger, cfg.CalDAVURL, cfg.CalDAVUsername, cfg.CalDAVPassword, cfg.Timeout)
	case "memory":
		logger.Warn("using in-memory calendar; events are not persisted")
		return NewMemoryProvider(), nil
	default:
		return nil, errs.Wrapf(ErrUnknownProvider, "%q", cfg.Provider)
	}
}
