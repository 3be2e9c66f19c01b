package api

import (
	"net/http"

	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Tags admin-bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, confirmed, rejected or removed_by_admin"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), req.Status)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags admin-bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Approve booking
// @Description Confirm one of the submitted preferences and create the calendar event
// @Tags admin-bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ApproveBookingRequest true "Chosen preference"
// @Success 200 {object} resdto.ResolutionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.ApproveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Approve(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondResolution(c, result)
}

// @Summary Reject booking
// @Tags admin-bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ResolutionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Reject(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondResolution(c, result)
}

// @Summary Remove confirmed booking
// @Description Cancel a confirmed booking, delete its calendar event and notify the participant
// @Tags admin-bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ResolutionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/remove [post]
func (h *BookingHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Remove(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondResolution(c, result)
}

func (h *BookingHandler) respondResolution(c *gin.Context, result *commands.ResolutionResult) {
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ResolutionResponse{
		Booking:      resdto.FromBookingView(view),
		Notification: resdto.FromNotificationOutcome(result.Notification),
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}
