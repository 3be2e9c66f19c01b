package api

import (
	"net/http"

	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlockedSlotHandler struct {
	cmds commands.BlockedSlotCommands
	q    queries.BlockedSlotQueries
}

func NewBlockedSlotHandler(cmds commands.BlockedSlotCommands, q queries.BlockedSlotQueries) *BlockedSlotHandler {
	return &BlockedSlotHandler{cmds: cmds, q: q}
}

// @Summary List blocked slots
// @Tags admin-blocked-slots
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BlockedSlotResponse
// @Router /api/admin/blocked-slots [get]
func (h *BlockedSlotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockedSlotViews(views))
}

// @Summary Block a time range
// @Tags admin-blocked-slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBlockedSlotRequest true "Blocked range"
// @Success 201 {object} resdto.BlockedSlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/blocked-slots [post]
func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	slot, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlockedSlot(slot))
}

// @Summary Unblock a time range
// @Tags admin-blocked-slots
// @Security BearerAuth
// @Param id path string true "Blocked slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/blocked-slots/{id} [delete]
func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
