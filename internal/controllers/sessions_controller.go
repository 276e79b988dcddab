package controllers

import (
	"net/http"

	"github.com/fsdevblog/tinylinks/internal/controllers/middlewares"
	"github.com/fsdevblog/tinylinks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type SessionsController struct {
	userService UserStore
	sessions    *middlewares.SessionManager
}

func NewSessionsController(userService UserStore, sessions *middlewares.SessionManager) *SessionsController {
	return &SessionsController{
		userService: userService,
		sessions:    sessions,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"ID"`
	Email string `json:"email"`
}

// Register регистрирует учетную запись и сразу открывает сессию.
func (s *SessionsController) Register(c *gin.Context) {
	var req credentialsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.String(http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.Register(ctx, req.Email, req.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if loginErr := s.sessions.LoginUser(c, user.ID); loginErr != nil {
		_ = c.Error(loginErr)
		c.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// Login открывает сессию по email и секрету. Неверная пара дает 403 без
// уточнения, что именно не совпало.
func (s *SessionsController) Login(c *gin.Context) {
	var req credentialsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.String(http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.Verify(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.String(http.StatusForbidden, "invalid credentials")
			return
		}
		abortWithServiceError(c, err)
		return
	}

	// Логин из анонимной сессии отбрасывает прежний идентификатор посетителя.
	if loginErr := s.sessions.LoginUser(c, user.ID); loginErr != nil {
		_ = c.Error(loginErr)
		c.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}

// Logout закрывает сессию.
func (s *SessionsController) Logout(c *gin.Context) {
	s.sessions.Logout(c)
	c.Status(http.StatusNoContent)
}
