package api

import (
	"net/http"

	"study-booking/internal/domain/participant"
	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// InviteHandler serves the participant side. The token in the path is the
// only credential.
type InviteHandler struct {
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
	cmds         commands.BookingCommands
}

func NewInviteHandler(availability queries.AvailabilityQueries, bookings queries.BookingQueries, cmds commands.BookingCommands) *InviteHandler {
	return &InviteHandler{
		availability: availability,
		bookings:     bookings,
		cmds:         cmds,
	}
}

// @Summary Weekly availability
// @Description Availability grid for one week page of the participant's link
// @Tags invite
// @Produce json
// @Param token path string true "Access token"
// @Param week query int false "Week offset from the current week"
// @Success 200 {object} resdto.WeekResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invite/{token} [get]
func (h *InviteHandler) GetWeek(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	var req reqdto.WeekRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	view, err := h.availability.WeekForToken(c.Request.Context(), token, req.Week)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Submit preferences
// @Description Submit one to three one-hour preferences; the booking stays pending until an admin resolves it
// @Tags invite
// @Accept json
// @Produce json
// @Param token path string true "Access token"
// @Param request body reqdto.SubmitBookingRequest true "Preferences"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/invite/{token}/bookings [post]
func (h *InviteHandler) SubmitBooking(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), token, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.bookings.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Booking history
// @Description Every booking the participant has submitted, newest first
// @Tags invite
// @Produce json
// @Param token path string true "Access token"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/invite/{token}/bookings [get]
func (h *InviteHandler) ListBookings(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	views, err := h.bookings.ListForToken(c.Request.Context(), token)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// token rejects malformed tokens as unknown participants without a lookup.
func (h *InviteHandler) token(c *gin.Context) (string, bool) {
	token, err := participant.ParseAccessToken(c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, queries.ErrParticipantNotFound)
		return "", false
	}
	return token.String(), true
}
