package booking

import (
	"fmt"

	"study-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusRejected       Status = "rejected"
	StatusRemovedByAdmin Status = "removed_by_admin"
)

const MaxCandidates = 3

var (
	ErrNoCandidates        = errs.New("at least one preferred slot is required")
	ErrTooManyCandidates   = errs.New("too many preferred slots")
	ErrSlotInPast          = errs.New("slot has already started")
	ErrInvalidStatus       = errs.New("invalid booking status")
	ErrInvalidTransition   = errs.New("booking cannot move to the requested status")
	ErrCandidateNotOffered = errs.New("slot is not one of the requested preferences")
	ErrMissingEventID      = errs.New("calendar event id is required to confirm")
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusRemovedByAdmin:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// CandidateError ties a failure to one of the submitted preferences. Index is
// 1-based to match how preferences are presented.
type CandidateError struct {
	Index int
	Err   error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("preference %d: %v", e.Index, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
