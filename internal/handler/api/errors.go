package api

import (
	"net/http"

	"study-booking/internal/domain/booking"
	"study-booking/internal/handler/httperr"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{commands.ErrParticipantNotFound, http.StatusNotFound, "Participant not found"},
	{queries.ErrParticipantNotFound, http.StatusNotFound, "Participant not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrBlockedSlotNotFound, http.StatusNotFound, "Blocked slot not found"},
	{commands.ErrSlotUnavailable, http.StatusConflict, "Slot is no longer available"},
	{commands.ErrCalendarUnavailable, http.StatusBadGateway, "Calendar is unavailable, try again later"},
	{commands.ErrInvalidCandidate, http.StatusBadRequest, "Invalid preferred slot"},
	{commands.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{queries.ErrInvalidWeek, http.StatusBadRequest, "Week is out of range"},
	{queries.ErrInvalidStatus, http.StatusBadRequest, "Invalid status filter"},
	{queries.ErrInvalidSettingKey, http.StatusBadRequest, "Unknown setting"},
	{commands.ErrTokenExhausted, http.StatusServiceUnavailable, "Could not allocate an access link, try again"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
}

type errorDetail struct {
	Candidate int    `json:"candidate,omitempty"`
	Reason    string `json:"reason"`
}

// abortWithUsecaseError maps usecase sentinels to a status. Client errors
// carry the reason and, for preference failures, the 1-based preference.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.status < http.StatusInternalServerError && m.status != http.StatusUnauthorized {
			detail = newErrorDetail(err)
		} else if m.status == http.StatusBadGateway {
			detail = candidateOnly(err)
		}
		httperr.AbortWithError(c, m.status, err, m.message, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func newErrorDetail(err error) *errorDetail {
	var cerr *booking.CandidateError
	if errs.As(err, &cerr) {
		return &errorDetail{Candidate: cerr.Index, Reason: cerr.Err.Error()}
	}
	return &errorDetail{Reason: err.Error()}
}

func candidateOnly(err error) any {
	var cerr *booking.CandidateError
	if errs.As(err, &cerr) {
		return &errorDetail{Candidate: cerr.Index, Reason: "calendar lookup failed"}
	}
	return nil
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", &errorDetail{Reason: err.Error()})
}
