//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string) string {
	t.Helper()
	// well past the validator's clock-skew leeway
	service := jwt.NewService(h.cfg.Secret, -time.Hour)
	token, err := service.GenerateToken(username)
	require.NoError(t, err)
	return token
}
