package api

import (
	"html/template"
	"net/http"

	"study-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var consentPage = template.Must(template.New("consent").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Consent Form</title>
</head>
<body>
<main>
{{.}}
</main>
</body>
</html>
`))

type ConsentHandler struct {
	q queries.SettingQueries
}

func NewConsentHandler(q queries.SettingQueries) *ConsentHandler {
	return &ConsentHandler{q: q}
}

// @Summary Consent form
// @Description Public consent text rendered as HTML
// @Tags public
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /consent [get]
func (h *ConsentHandler) Show(c *gin.Context) {
	body, err := h.q.ConsentHTML(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	// the consent text is authored by the admin
	c.Render(http.StatusOK, render.HTML{
		Template: consentPage,
		Data:     template.HTML(body), //nolint:gosec
	})
}
