package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"study-booking/internal/handler/api"
	"study-booking/internal/handler/middleware"
	"study-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Invite       *api.InviteHandler
	Booking      *api.BookingHandler
	Participant  *api.ParticipantHandler
	BlockedSlot  *api.BlockedSlotHandler
	Setting      *api.SettingHandler
	Consent      *api.ConsentHandler
	RequireAdmin *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/consent", h.Consent.Show)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		invite := apiGroup.Group("/invite/:token")
		addRoutes(invite, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Invite.GetWeek},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Invite.SubmitBooking},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Invite.ListBookings},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authed := admin.Group("")
			authed.Use(h.RequireAdmin.RequireAdmin())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},

				{Method: http.MethodPost, Path: "/participants", Handler: h.Participant.Register},
				{Method: http.MethodGet, Path: "/participants", Handler: h.Participant.List},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/approve", Handler: h.Booking.Approve},
				{Method: http.MethodPost, Path: "/bookings/:id/reject", Handler: h.Booking.Reject},
				{Method: http.MethodPost, Path: "/bookings/:id/remove", Handler: h.Booking.Remove},

				{Method: http.MethodGet, Path: "/blocked-slots", Handler: h.BlockedSlot.List},
				{Method: http.MethodPost, Path: "/blocked-slots", Handler: h.BlockedSlot.Create},
				{Method: http.MethodDelete, Path: "/blocked-slots/:id", Handler: h.BlockedSlot.Delete},

				{Method: http.MethodGet, Path: "/settings", Handler: h.Setting.List},
				{Method: http.MethodGet, Path: "/settings/:key", Handler: h.Setting.Get},
				{Method: http.MethodPut, Path: "/settings/:key", Handler: h.Setting.Update},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
