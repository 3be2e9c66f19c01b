//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"study-booking/internal/domain/setting"
	"study-booking/internal/handler/api"
	reqdto "study-booking/internal/handler/dto/request"
	resdto "study-booking/internal/handler/dto/response"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/queries"
	"study-booking/tests/common/httptest"
	commandsmock "study-booking/tests/mock/commands"
	queriesmock "study-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettingCommands
	mockQueries  *queriesmock.MockSettingQueries
}

func (s *SettingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettingQueries(s.mockCtrl)

	settings := api.NewSettingHandler(s.mockCommands, s.mockQueries)
	consent := api.NewConsentHandler(s.mockQueries)

	s.router.GET("/settings", settings.List)
	s.router.GET("/settings/:key", settings.Get)
	s.router.PUT("/settings/:key", settings.Update)
	s.router.GET("/consent", consent.Show)
}

func (s *SettingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingHandlerTestSuite))
}

func (s *SettingHandlerTestSuite) TestList() {
	views := []*queries.SettingView{
		{Key: "email_body", Value: "Hi {{name}}", IsDefault: true},
		{Key: "consent_html", Value: "<p>ok</p>"},
	}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "")

	var body []resdto.SettingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.True(body[0].IsDefault)
	s.Equal("consent_html", body[1].Key)
}

func (s *SettingHandlerTestSuite) TestGet() {
	s.Run("success: returns value", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "email_body").
			Return(&queries.SettingView{Key: "email_body", Value: "Hi"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/email_body", nil, "")

		var body resdto.SettingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Hi", body.Value)
	})

	s.Run("error: 400 on an unknown key", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "theme").
			Return(nil, errs.Mark(setting.ErrUnknownKey, queries.ErrInvalidSettingKey)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/theme", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown setting")
	})
}

func (s *SettingHandlerTestSuite) TestUpdate() {
	value := "Dear {{name}}, pick a slot: {{link}}"
	reqBody := reqdto.UpdateSettingRequest{Value: &value}

	s.Run("success: stores the new value", func() {
		saved, err := setting.NewSetting(setting.KeyInvitationBody, value, time.Now())
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Update(gomock.Any(), "email_body", reqBody).Return(saved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/email_body", reqBody, "")

		var body resdto.SettingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(value, body.Value)
		s.False(body.IsDefault)
		s.NotNil(body.UpdatedAt)
	})

	s.Run("success: empty value is allowed", func() {
		empty := ""
		emptyReq := reqdto.UpdateSettingRequest{Value: &empty}
		saved, err := setting.NewSetting(setting.KeyConsent, empty, time.Now())
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Update(gomock.Any(), "consent_html", emptyReq).Return(saved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/consent_html", emptyReq, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/email_body", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on an unknown key", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "theme", reqBody).
			Return(nil, errs.Mark(setting.ErrUnknownKey, commands.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/theme", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid input")
	})
}

func (s *SettingHandlerTestSuite) TestConsent() {
	s.Run("success: renders the consent text as a page", func() {
		s.mockQueries.EXPECT().ConsentHTML(gomock.Any()).Return("<h2>Consent Form</h2>\n<p>Agree?</p>", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/consent", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), "<h2>Consent Form</h2>")
		s.Contains(rec.Body.String(), "<title>Consent Form</title>")
	})

	s.Run("error: 500 when the text cannot be loaded", func() {
		s.mockQueries.EXPECT().ConsentHTML(gomock.Any()).Return("", errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/consent", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
