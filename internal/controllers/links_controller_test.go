package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/tinylinks/internal/config"
	"github.com/fsdevblog/tinylinks/internal/controllers/middlewares"
	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/services"
	"github.com/fsdevblog/tinylinks/internal/services/smocks"
	"github.com/fsdevblog/tinylinks/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testJWTSecret = []byte("controllers-test-secret")

type LinksControllerSuite struct {
	suite.Suite
	linkMock *smocks.LinkMock
	userMock *smocks.UserMock
	router   *gin.Engine
}

func (s *LinksControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.linkMock = new(smocks.LinkMock)
	s.userMock = new(smocks.UserMock)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.router = SetupRouter(RouterParams{
		LinkService: s.linkMock,
		UserService: s.userMock,
		Sessions:    middlewares.NewSessionManager(testJWTSecret),
		AppConf:     &config.Config{},
		Logger:      logger,
	})
}

// userCookie собирает сессионную куку аутентифицированного пользователя.
func (s *LinksControllerSuite) userCookie(userID string) *http.Cookie {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, testJWTSecret)
	s.Require().NoError(err)
	return &http.Cookie{Name: middlewares.SessionCookieName, Value: token}
}

func (s *LinksControllerSuite) visitorCookie(visitorUUID string) *http.Cookie {
	token, err := tokens.GenerateVisitorJWT(visitorUUID, time.Hour, testJWTSecret)
	s.Require().NoError(err)
	return &http.Cookie{Name: middlewares.SessionCookieName, Value: token}
}

func (s *LinksControllerSuite) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LinksControllerSuite) TestRedirect() {
	s.linkMock.On("Resolve", mock.Anything, "abc123", mock.Anything, mock.Anything).
		Return("https://example.com/page", nil)

	w := s.do(http.MethodGet, "/u/abc123", "")

	s.Equal(http.StatusTemporaryRedirect, w.Code)
	s.Equal("https://example.com/page", w.Header().Get("Location"))

	// Первый анонимный визит получает сессионную куку.
	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middlewares.SessionCookieName {
			sessionCookie = cookie
		}
	}
	s.Require().NotNil(sessionCookie)
	s.NotEmpty(sessionCookie.Value)
}

func (s *LinksControllerSuite) TestRedirect_KeepsExistingVisitor() {
	visitorUUID := uuid.NewString()
	s.linkMock.On("Resolve", mock.Anything, "abc123", visitorUUID, mock.Anything).
		Return("https://example.com/page", nil)

	w := s.do(http.MethodGet, "/u/abc123", "", s.visitorCookie(visitorUUID))

	s.Equal(http.StatusTemporaryRedirect, w.Code)
	// Идентификатор из куки используется как есть, новая кука не выдается.
	s.Empty(w.Result().Cookies())
	s.linkMock.AssertExpectations(s.T())
}

func (s *LinksControllerSuite) TestRedirect_WrongCodeLength() {
	w := s.do(http.MethodGet, "/u/toolongcode", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.linkMock.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LinksControllerSuite) TestRedirect_UnknownCode() {
	s.linkMock.On("Resolve", mock.Anything, "zzz999", mock.Anything, mock.Anything).
		Return("", services.ErrRecordNotFound)

	w := s.do(http.MethodGet, "/u/zzz999", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LinksControllerSuite) TestCreateLink() {
	userID := uuid.NewString()
	link := &models.Link{
		ShortCode: "abc123",
		Target:    "https://example.com/page",
		OwnerID:   userID,
	}
	s.linkMock.On("Create", mock.Anything, models.AuthenticatedIdentity(userID), "https://example.com/page").
		Return(link, nil)

	w := s.do(http.MethodPost, "/api/links", `{"url":"https://example.com/page"}`, s.userCookie(userID))

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"shortCode":"abc123"`)
	s.Contains(w.Body.String(), "/u/abc123")
}

func (s *LinksControllerSuite) TestCreateLink_Unauthenticated() {
	s.linkMock.On("Create", mock.Anything, models.UnauthenticatedIdentity(), "https://example.com/page").
		Return(nil, services.ErrUnauthenticated)

	w := s.do(http.MethodPost, "/api/links", `{"url":"https://example.com/page"}`)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *LinksControllerSuite) TestCreateLink_InvalidURL() {
	w := s.do(http.MethodPost, "/api/links", `{"url":"ftp://example.com"}`, s.userCookie(uuid.NewString()))
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.linkMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LinksControllerSuite) TestListLinks() {
	userID := uuid.NewString()
	s.linkMock.On("ListForOwner", mock.Anything, userID).
		Return([]models.Link{{ShortCode: "abc123", Target: "https://example.com", OwnerID: userID}}, nil)

	w := s.do(http.MethodGet, "/api/links", "", s.userCookie(userID))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"shortCode":"abc123"`)
}

func (s *LinksControllerSuite) TestListLinks_Unauthenticated() {
	w := s.do(http.MethodGet, "/api/links", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *LinksControllerSuite) TestGetLink_Stats() {
	userID := uuid.NewString()
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	link := &models.Link{
		ShortCode:  "abc123",
		Target:     "https://example.com",
		OwnerID:    userID,
		VisitCount: 3,
		VisitorLog: map[string][]time.Time{
			"visitor": {ts, ts.Add(time.Minute), ts.Add(time.Hour)},
		},
	}
	s.linkMock.On("Get", mock.Anything, "abc123").Return(link, nil)

	w := s.do(http.MethodGet, "/api/links/abc123", "", s.userCookie(userID))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"visitCount":3`)
	s.Contains(w.Body.String(), `"uniqueVisitors":1`)
}

func (s *LinksControllerSuite) TestGetLink_NotOwner() {
	link := &models.Link{ShortCode: "abc123", Target: "https://example.com", OwnerID: uuid.NewString()}
	s.linkMock.On("Get", mock.Anything, "abc123").Return(link, nil)

	w := s.do(http.MethodGet, "/api/links/abc123", "", s.userCookie(uuid.NewString()))
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *LinksControllerSuite) TestUpdateLink_Forbidden() {
	userID := uuid.NewString()
	s.linkMock.On("UpdateTarget", mock.Anything, models.AuthenticatedIdentity(userID), "abc123", "https://example.com/new").
		Return(services.ErrForbidden)

	w := s.do(http.MethodPatch, "/api/links/abc123", `{"url":"https://example.com/new"}`, s.userCookie(userID))
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *LinksControllerSuite) TestDeleteLink() {
	userID := uuid.NewString()
	s.linkMock.On("Delete", mock.Anything, models.AuthenticatedIdentity(userID), "abc123").
		Return(nil)

	w := s.do(http.MethodDelete, "/api/links/abc123", "", s.userCookie(userID))
	s.Equal(http.StatusNoContent, w.Code)
	s.linkMock.AssertExpectations(s.T())
}

func TestLinksControllerSuite(t *testing.T) {
	suite.Run(t, new(LinksControllerSuite))
}
