package bootstrap

import (
	"errors"

	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
