//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"study-booking/internal/domain/notification"
	"study-booking/internal/handler/dto/request"
	"study-booking/internal/handler/dto/response"
	"study-booking/tests/common/authtest"
	"study-booking/tests/common/dbtest"
	"study-booking/tests/common/httptest"
	"study-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.adminToken = authtest.LoginAdmin(s.T(), s.Router, s.Config.Admin.Username, e2e.AdminPassword)
}

func (s *bookingSuite) register(name, email string) (*response.ParticipantResponse, string) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/participants",
		request.RegisterParticipantRequest{Name: name, Email: email}, s.adminToken)

	var body response.RegisterParticipantResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	require.NotNil(t, body.Participant)

	parts := strings.Split(body.Participant.InviteURL, "/")
	return body.Participant, parts[len(parts)-1]
}

func (s *bookingSuite) week(token string, offset int) response.WeekResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/invite/%s?week=%d", token, offset), nil, "")

	var body response.WeekResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

// freeSlots returns the first n available slots of a day on a fully future week.
func (s *bookingSuite) freeSlots(token string, n int) []request.SlotRequest {
	wk := s.week(token, 1)
	var out []request.SlotRequest
	for _, sl := range wk.Days[1].Slots {
		if sl.Status == "available" && len(out) < n {
			out = append(out, request.SlotRequest{Start: sl.Start, End: sl.End})
		}
	}
	require.Len(s.T(), out, n)
	return out
}

func slotStatus(wk response.WeekResponse, slot request.SlotRequest) string {
	for _, d := range wk.Days {
		for _, sl := range d.Slots {
			if sl.Start.Equal(slot.Start) {
				return sl.Status
			}
		}
	}
	return ""
}

func (s *bookingSuite) submit(token string, slots []request.SlotRequest) *response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/invite/"+token+"/bookings",
		request.SubmitBookingRequest{Slots: slots}, "")

	var body response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	return &body
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("register, request, approve and remove", func() {
		t := s.T()
		p, token := s.register("Ada Lovelace", "ada@example.com")

		invites := s.Mailbox.Messages(notification.KindInvitation)
		require.Len(t, invites, 1)
		s.Equal("ada@example.com", invites[0].To.Email)
		s.Contains(invites[0].Body, p.InviteURL)

		wk := s.week(token, 0)
		s.Equal("Ada Lovelace", wk.ParticipantName)
		s.Equal("America/Toronto", wk.TimeZone)
		s.Len(wk.Days, 7)

		slots := s.freeSlots(token, 3)
		created := s.submit(token, slots)
		expected := &response.BookingResponse{
			ParticipantName:  "Ada Lovelace",
			ParticipantEmail: "ada@example.com",
			Status:           "pending",
			Candidates: []response.SlotResponse{
				{Start: slots[0].Start, End: slots[0].End},
				{Start: slots[1].Start, End: slots[1].End},
				{Start: slots[2].Start, End: slots[2].End},
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "ParticipantID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			t.Errorf("submitted booking mismatch (-want +got):\n%s", diff)
		}
		s.Equal(1, dbtest.CountBookings(t, s.DB, "pending"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings?status=pending", nil, s.adminToken)
		var pending []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Len(t, pending, 1)
		s.Equal(created.ID, pending[0].ID)
		s.Equal("ada@example.com", pending[0].ParticipantEmail)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/bookings/"+created.ID.String()+"/approve",
			request.ApproveBookingRequest{SlotRequest: slots[1]}, s.adminToken)
		var approved response.ResolutionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		s.Equal("confirmed", approved.Booking.Status)
		require.NotNil(t, approved.Booking.Selected)
		s.True(approved.Booking.Selected.Start.Equal(slots[1].Start))
		require.NotNil(t, approved.Notification)
		s.True(approved.Notification.Delivered)

		events := s.Calendar.Events(s.Config.Calendar.ID)
		require.Len(t, events, 1)
		s.Equal("ada@example.com", events[0].AttendeeEmail)
		s.Len(s.Mailbox.Messages(notification.KindConfirmation), 1)

		s.Equal("unavailable", slotStatus(s.week(token, 1), slots[1]))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/invite/"+token+"/bookings", nil, "")
		var mine []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		s.Equal("confirmed", mine[0].Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/bookings/"+created.ID.String()+"/remove", nil, s.adminToken)
		var removed response.ResolutionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &removed)
		s.Equal("removed_by_admin", removed.Booking.Status)
		s.Nil(removed.Booking.Selected)

		s.Empty(s.Calendar.Events(s.Config.Calendar.ID))
		s.Len(s.Mailbox.Messages(notification.KindCancellation), 1)
		s.Equal("available", slotStatus(s.week(token, 1), slots[1]))
	})

	s.Run("reject leaves the calendar untouched", func() {
		t := s.T()
		_, token := s.register("Alan Turing", "alan@example.com")
		created := s.submit(token, s.freeSlots(token, 1))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/bookings/"+created.ID.String()+"/reject", nil, s.adminToken)
		var rejected response.ResolutionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		s.Equal("rejected", rejected.Booking.Status)
		s.Empty(s.Calendar.Events(s.Config.Calendar.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/bookings/"+created.ID.String()+"/approve",
			request.ApproveBookingRequest{SlotRequest: request.SlotRequest{Start: created.Candidates[0].Start, End: created.Candidates[0].End}}, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestSubmitConflicts() {
	s.Run("a blocked preference is rejected with its position", func() {
		t := s.T()
		_, token := s.register("Grace Hopper", "grace@example.com")
		slots := s.freeSlots(token, 2)
		dbtest.CreateTestBlockedSlot(t, s.DB, slots[1].Start, slots[1].End, "lab closed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/invite/"+token+"/bookings",
			request.SubmitBookingRequest{Slots: slots}, "")

		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot is no longer available")
		s.Equal(2, body.Detail.Candidate)
		s.Zero(dbtest.CountBookings(t, s.DB, "pending"))
	})

	s.Run("calendar outage fails the request", func() {
		t := s.T()
		_, token := s.register("Edsger Dijkstra", "edsger@example.com")
		slots := s.freeSlots(token, 1)
		s.Calendar.SetDown(s.Config.Calendar.ID, true)
		s.Calendar.SetDown(s.Config.Calendar.FallbackID, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/invite/"+token+"/bookings",
			request.SubmitBookingRequest{Slots: slots}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Calendar is unavailable")
		s.True(s.week(token, 1).Degraded)
	})

	s.Run("unknown invite token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/invite/"+strings.Repeat("A", 22), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Participant not found")
	})
}

func (s *bookingSuite) TestAdminAuth() {
	s.Run("admin routes require a session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("expired tokens are refused", func() {
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), s.Config.Admin.Username)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/me", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("wrong password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/login",
			request.LoginRequest{Username: s.Config.Admin.Username, Password: "not-the-password"}, "")
		body := httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid username or password")
		httptest.AssertHeadersPresent(s.T(), w, "X-Request-ID")
		s.Equal(w.Header().Get("X-Request-ID"), body.RequestID)
	})

	s.Run("me returns the admin", func() {
		w := httptest.PerformAdminRequest(s.T(), s.Router, http.MethodGet, "/api/admin/me", nil, s.adminToken)
		var me response.MeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(s.Config.Admin.Username, me.Username)
	})

	s.Run("logout", func() {
		authtest.LogoutAdmin(s.T(), s.Router, s.adminToken)
	})
}
