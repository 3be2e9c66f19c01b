//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"study-booking/internal/handler/api"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/handler/middleware"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/cookie"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/pkg/jwt"
	"study-booking/internal/usecase"
	"study-booking/internal/usecase/commands"
	"study-booking/tests/common/builder"
	"study-booking/tests/common/httptest"
	"study-booking/tests/common/testutil"
	commandsmock "study-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	jwtService   *jwt.Service
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.jwtService = jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	s.handler = api.NewAuthHandler(s.mockCommands, cfg)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", auth.RequireAdmin(), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns token and sets the session cookie", func() {
		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{Username: "admin", Token: "signed.jwt.token", ExpiresAt: expires}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body.Username)
		s.Equal("signed.jwt.token", body.AccessToken)
		s.True(body.ExpiresAt.Equal(expires))

		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Equal("signed.jwt.token", session.Value)
		s.True(session.HttpOnly)
		s.Equal(http.SameSiteLaxMode, session.SameSite)
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("error: 500 when signing fails", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, errs.Mark(errs.New("key too short"), commands.ErrTokenGeneration)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"username", "password"} {
			requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}

// ================================================================================
// TestLogout / TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
	s.Negative(session.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	token, err := s.jwtService.GenerateToken("admin")
	s.Require().NoError(err)

	s.Run("success: bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, token)

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body.Username)
	})

	s.Run("success: session cookie", func() {
		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/auth/me", nil, cookies, "")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body.Username)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("error: 401 with a token signed by another key", func() {
		other, err := jwt.NewService("another-secret", time.Hour).GenerateToken("admin")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, other)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("error: 401 with an expired token", func() {
		expired, err := jwt.NewService(config.NewTestConfig().JWT.Secret, -time.Hour).GenerateToken("admin")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})
}
