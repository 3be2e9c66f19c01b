package api

import (
	"net/http"

	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	cmds  commands.ParticipantCommands
	q     queries.ParticipantQueries
	links shared.Links
}

func NewParticipantHandler(cmds commands.ParticipantCommands, q queries.ParticipantQueries, links shared.Links) *ParticipantHandler {
	return &ParticipantHandler{cmds: cmds, q: q, links: links}
}

// @Summary Register participant
// @Description Create a participant and e-mail the invitation link
// @Tags admin-participants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterParticipantRequest true "Participant"
// @Success 201 {object} resdto.RegisterParticipantResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/participants [post]
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req reqdto.RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary List participants
// @Tags admin-participants
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ParticipantResponse
// @Router /api/admin/participants [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	out := make([]*resdto.ParticipantResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromParticipantView(v, h.links.InviteURL)
	}
	c.JSON(http.StatusOK, out)
}
