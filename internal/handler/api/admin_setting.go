package api

import (
	"net/http"

	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	cmds commands.SettingCommands
	q    queries.SettingQueries
}

func NewSettingHandler(cmds commands.SettingCommands, q queries.SettingQueries) *SettingHandler {
	return &SettingHandler{cmds: cmds, q: q}
}

// @Summary List settings
// @Description Every editable text, with built-in defaults for keys never saved
// @Tags admin-settings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SettingResponse
// @Router /api/admin/settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingViews(views))
}

// @Summary Get setting
// @Tags admin-settings
// @Security BearerAuth
// @Produce json
// @Param key path string true "email_body, confirmation_body, cancellation_body or consent_html"
// @Success 200 {object} resdto.SettingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/settings/{key} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingView(view))
}

// @Summary Update setting
// @Tags admin-settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body reqdto.UpdateSettingRequest true "New value"
// @Success 200 {object} resdto.SettingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/settings/{key} [put]
func (h *SettingHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	s, err := h.cmds.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSetting(s))
}
