//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/cookie"
	"study-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginURL  = "/api/admin/login"
	logoutURL = "/api/admin/logout"
)

// LoginAdmin returns the session token set by a successful login.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session token cookie is empty")

	return sessionCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, sessionToken string) {
	t.Helper()

	w := httptest.PerformAdminRequest(t, router, http.MethodPost, logoutURL, nil, sessionToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, cleared, "logout did not clear the session cookie")
	require.Empty(t, cleared.Value)
}
