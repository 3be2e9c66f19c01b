//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"study-booking/internal/handler/httperr"
	"study-booking/internal/handler/middleware"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/jwt"
	"study-booking/internal/usecase"
	"study-booking/tests/common/authtest"
	"study-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMaskPath(t *testing.T) {
	cases := map[string]string{
		"/api/invite/abcDEF123_-xyz0123456A":          "/api/invite/***",
		"/api/invite/abcDEF123_-xyz0123456A/bookings": "/api/invite/***/bookings",
		"/invite/abcDEF123_-xyz0123456A":              "/invite/***",
		"/api/invite/":                                "/api/invite/",
		"/api/admin/bookings/42/approve":              "/api/admin/bookings/42/approve",
		"/health":                                     "/health",
	}
	for in, want := range cases {
		assert.Equal(t, want, middleware.MaskPath(in), in)
	}
}

type MiddlewareTestSuite struct {
	suite.Suite
	cfg    config.Config
	logs   *bytes.Buffer
	router *gin.Engine
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(s.cfg.JWT.Secret, s.cfg.JWT.Duration)))

	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery())
	s.router.Use(middleware.LoggingMiddleware(logger, s.cfg.Log))
	s.router.Use(middleware.ErrorHandler())

	s.router.GET("/api/invite/:token/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	s.router.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("googleapi: 503"), "Calendar is unavailable, try again later", nil)
	})
	s.router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("handler forgot to respond"))
	})
	s.router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	s.router.GET("/admin", auth.RequireAdmin(), func(c *gin.Context) {
		admin, ok := middleware.GetAdmin(c)
		s.True(ok)
		c.JSON(http.StatusOK, gin.H{"admin": admin})
	})
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) TestLoggingMasksInviteTokens() {
	token := "abcDEF123_-xyz0123456A"

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/invite/"+token+"/bookings", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeadersPresent(s.T(), rec, "X-Request-ID")
	s.NotContains(s.logs.String(), token)
	s.Contains(s.logs.String(), `"path":"/api/invite/***/bookings"`)
	s.Contains(s.logs.String(), `"route":"/api/invite/:token/bookings"`)
}

func (s *MiddlewareTestSuite) TestErrorsCarryTheRequestID() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fail", nil, "")

	body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Calendar is unavailable")
	s.NotEmpty(body.RequestID)
	s.Equal(rec.Header().Get("X-Request-ID"), body.RequestID)
}

func (s *MiddlewareTestSuite) TestUnansweredErrorsBecome500() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/silent", nil, "")

	body := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	s.NotEmpty(body.RequestID)
}

func (s *MiddlewareTestSuite) TestRecoveryAnswers500() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}

func (s *MiddlewareTestSuite) TestRequireAdmin() {
	helper := authtest.NewJWTHelper(s.cfg.JWT)

	s.Run("success: bearer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, helper.GenerateToken(s.T(), "admin"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(s.logs.String(), `"admin":"admin"`)
	})

	s.Run("success: session cookie", func() {
		rec := httptest.PerformAdminRequest(s.T(), s.router, http.MethodGet, "/admin", nil, helper.GenerateToken(s.T(), "admin"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: no credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("error: foreign signature", func() {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret", Duration: time.Hour})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, other.GenerateToken(s.T(), "admin"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	request := func(r *gin.Engine) *http.Response {
		req, err := http.NewRequest(http.MethodGet, "/health", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://study.example.com")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Result()
	}

	t.Run("listed origin keeps credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://study.example.com"}

		res := request(newRouter(cfg))

		assert.Equal(t, "https://study.example.com", res.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}

		res := request(newRouter(cfg))

		assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	})
}
