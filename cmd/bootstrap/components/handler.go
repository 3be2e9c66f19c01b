package components

import (
	"log/slog"

	"study-booking/internal/handler"
	"study-booking/internal/handler/api"
	"study-booking/internal/handler/middleware"
	"study-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInviteHandler,
		api.NewBookingHandler,
		api.NewParticipantHandler,
		api.NewBlockedSlotHandler,
		api.NewSettingHandler,
		api.NewConsentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *slog.Logger
	Auth        *api.AuthHandler
	Invite      *api.InviteHandler
	Booking     *api.BookingHandler
	Participant *api.ParticipantHandler
	BlockedSlot *api.BlockedSlotHandler
	Setting     *api.SettingHandler
	Consent     *api.ConsentHandler
	AuthMw      *middleware.AuthMiddleware
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, p.Logger, handler.Handlers{
		Auth:         p.Auth,
		Invite:       p.Invite,
		Booking:      p.Booking,
		Participant:  p.Participant,
		BlockedSlot:  p.BlockedSlot,
		Setting:      p.Setting,
		Consent:      p.Consent,
		RequireAdmin: p.AuthMw,
	})
}
