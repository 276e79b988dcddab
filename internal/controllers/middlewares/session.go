package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdentityKey           = "sessionIdentity"
	SessionCookieName     = "session"
	SessionExpireDuration = 24 * time.Hour
)

// SessionManager управляет идентичностью сессии поверх JWT куки.
//
// Состояния сессии: unauthenticated -> authenticated (логин),
// unauthenticated -> anonymous (первый публичный переход, см. TrackVisitor),
// anonymous -> authenticated (логин; прежний анонимный идентификатор
// отбрасывается и с историей пользователя не сливается),
// authenticated -> unauthenticated (логаут).
type SessionManager struct {
	jwtSecret []byte
}

func NewSessionManager(jwtSecret []byte) *SessionManager {
	return &SessionManager{jwtSecret: jwtSecret}
}

// Middleware восстанавливает идентичность из куки и кладет ее в контекст.
// Куку не выставляет: анонимная идентичность назначается лениво обработчиком
// публичного перехода.
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := models.UnauthenticatedIdentity()

		cookie, err := c.Request.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			claims, validateErr := tokens.ValidateSessionJWT(cookie.Value, m.jwtSecret)
			if validateErr != nil {
				// Просроченный или битый токен равносилен отсутствию сессии.
				_ = c.Error(fmt.Errorf("session middleware: %w", validateErr))
			} else {
				switch {
				case claims.UserID != "":
					identity = models.AuthenticatedIdentity(claims.UserID)
				case claims.VisitorUUID != "":
					identity = models.AnonymousIdentity(claims.VisitorUUID)
				}
			}
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// Identity возвращает идентичность текущего запроса.
func Identity(c *gin.Context) models.Identity {
	val, ok := c.Get(IdentityKey)
	if !ok {
		return models.UnauthenticatedIdentity()
	}
	identity, ok := val.(models.Identity)
	if !ok {
		return models.UnauthenticatedIdentity()
	}
	return identity
}

// LoginUser переводит сессию в состояние authenticated.
func (m *SessionManager) LoginUser(c *gin.Context, userID string) error {
	tokenString, err := tokens.GenerateUserJWT(userID, SessionExpireDuration, m.jwtSecret)
	if err != nil {
		return fmt.Errorf("login user: %w", err)
	}
	m.setSessionCookie(c, tokenString, int(SessionExpireDuration.Seconds()))
	c.Set(IdentityKey, models.AuthenticatedIdentity(userID))
	return nil
}

// TrackVisitor назначает сессии анонимную идентичность и возвращает ее.
// Идентификатор сохраняется в куке, так что повторные визиты того же браузера
// считаются одним уникальным посетителем.
func (m *SessionManager) TrackVisitor(c *gin.Context) (models.Identity, error) {
	visitorUUID := uuid.NewString()
	tokenString, err := tokens.GenerateVisitorJWT(visitorUUID, SessionExpireDuration, m.jwtSecret)
	if err != nil {
		return models.UnauthenticatedIdentity(), fmt.Errorf("track visitor: %w", err)
	}
	m.setSessionCookie(c, tokenString, int(SessionExpireDuration.Seconds()))

	identity := models.AnonymousIdentity(visitorUUID)
	c.Set(IdentityKey, identity)
	return identity, nil
}

// Logout сбрасывает сессию.
func (m *SessionManager) Logout(c *gin.Context) {
	m.setSessionCookie(c, "", -1)
	c.Set(IdentityKey, models.UnauthenticatedIdentity())
}

func (m *SessionManager) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
