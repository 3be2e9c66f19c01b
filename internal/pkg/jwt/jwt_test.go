//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"study-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps the subject", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)

		token, err := svc.GenerateToken("admin")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("admin")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Hour).GenerateToken("admin")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("skew within leeway is tolerated", func(t *testing.T) {
		token, err := jwt.NewService("secret", -10*time.Second).GenerateToken("admin")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
