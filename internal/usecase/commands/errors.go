package commands

import (
	"study-booking/internal/pkg/errs"
)

var (
	ErrParticipantNotFound = errs.New("participant not found")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBlockedSlotNotFound = errs.New("blocked slot not found")
	ErrInvalidCandidate    = errs.New("invalid preferred slot")
	ErrInvalidInput        = errs.New("invalid input")
	ErrSlotUnavailable     = errs.New("slot is no longer available")
	ErrCalendarUnavailable = errs.New("calendar unavailable")
	ErrTokenExhausted      = errs.New("could not allocate a unique access token")
)
