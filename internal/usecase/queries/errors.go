package queries

import (
	"study-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrParticipantNotFound = errs.New("participant not found")
	ErrInvalidWeek         = errs.New("week offset out of range")
	ErrInvalidStatus       = errs.New("invalid booking status filter")
	ErrInvalidSettingKey   = errs.New("unknown setting key")
)
