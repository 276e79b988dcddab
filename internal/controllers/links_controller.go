package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/fsdevblog/tinylinks/internal/controllers/middlewares"
	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/gin-gonic/gin"
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

type LinksController struct {
	linkService LinkStore
	sessions    *middlewares.SessionManager
	baseURL     *url.URL
}

func NewLinksController(linkService LinkStore, sessions *middlewares.SessionManager, baseURL *url.URL) *LinksController {
	return &LinksController{
		linkService: linkService,
		sessions:    sessions,
		baseURL:     baseURL,
	}
}

type linkRequest struct {
	URL string `json:"url" binding:"required"`
}

type linkResponse struct {
	ShortCode string `json:"shortCode"`
	ShortURL  string `json:"shortURL"`
	Target    string `json:"target"`
}

type linkStatsResponse struct {
	linkResponse
	VisitCount     int                    `json:"visitCount"`
	UniqueVisitors int                    `json:"uniqueVisitors"`
	VisitorLog     map[string][]time.Time `json:"visitorLog"`
}

// Redirect публичный переход по короткой ссылке. Единственный путь мутации,
// доступный без аутентификации: каждое срабатывание фиксируется в статистике.
func (l *LinksController) Redirect(c *gin.Context) {
	code := c.Param("shortCode")
	if len(code) != models.ShortCodeLength {
		c.String(http.StatusNotFound, ErrRecordNotFound.Error())
		return
	}

	identity := middlewares.Identity(c)
	if identity.Kind == models.IdentityUnauthenticated {
		// Первый визит анонима: назначаем отслеживаемую идентичность.
		tracked, trackErr := l.sessions.TrackVisitor(c)
		if trackErr != nil {
			_ = c.Error(trackErr)
			c.String(http.StatusInternalServerError, ErrInternal.Error())
			return
		}
		identity = tracked
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	target, err := l.linkService.Resolve(ctx, code, identity.VisitorKey(), time.Now().UTC())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}

// CreateLink создает короткую ссылку от имени текущей сессии.
func (l *LinksController) CreateLink(c *gin.Context) {
	var req linkRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.String(http.StatusBadRequest, "url is required")
		return
	}
	parsedURL, parseErr := validateURL(req.URL)
	if parseErr != nil {
		c.String(http.StatusUnprocessableEntity, parseErr.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	link, err := l.linkService.Create(ctx, middlewares.Identity(c), parsedURL.String())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l.linkResponse(c.Request, link))
}

// ListLinks возвращает ссылки текущего пользователя.
func (l *LinksController) ListLinks(c *gin.Context) {
	identity := middlewares.Identity(c)
	if !identity.IsAuthenticated() {
		c.String(http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	links, err := l.linkService.ListForOwner(ctx, identity.UserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	result := make([]linkResponse, 0, len(links))
	for i := range links {
		result = append(result, l.linkResponse(c.Request, &links[i]))
	}
	c.JSON(http.StatusOK, result)
}

// GetLink возвращает запись со статистикой посещений. Доступно только владельцу.
func (l *LinksController) GetLink(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	link, ok := l.fetchOwned(ctx, c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, linkStatsResponse{
		linkResponse:   l.linkResponse(c.Request, link),
		VisitCount:     link.VisitCount,
		UniqueVisitors: link.UniqueVisitorCount(),
		VisitorLog:     link.VisitorLog,
	})
}

// UpdateLink заменяет целевой URL записи. Доступно только владельцу.
func (l *LinksController) UpdateLink(c *gin.Context) {
	var req linkRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.String(http.StatusBadRequest, "url is required")
		return
	}
	parsedURL, parseErr := validateURL(req.URL)
	if parseErr != nil {
		c.String(http.StatusUnprocessableEntity, parseErr.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	code := c.Param("shortCode")
	if err := l.linkService.UpdateTarget(ctx, middlewares.Identity(c), code, parsedURL.String()); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteLink удаляет запись целиком. Доступно только владельцу.
func (l *LinksController) DeleteLink(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	code := c.Param("shortCode")
	if err := l.linkService.Delete(ctx, middlewares.Identity(c), code); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fetchOwned достает запись и проверяет, что текущая сессия - ее владелец.
// При false ответ клиенту уже отправлен.
func (l *LinksController) fetchOwned(ctx context.Context, c *gin.Context) (*models.Link, bool) {
	identity := middlewares.Identity(c)

	link, err := l.linkService.Get(ctx, c.Param("shortCode"))
	if err != nil {
		abortWithServiceError(c, err)
		return nil, false
	}
	if !identity.IsAuthenticated() {
		c.String(http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	if link.OwnerID != identity.UserID {
		c.String(http.StatusForbidden, "forbidden")
		return nil, false
	}
	return link, true
}

// linkResponse собирает ответное представление записи.
func (l *LinksController) linkResponse(r *http.Request, link *models.Link) linkResponse {
	return linkResponse{
		ShortCode: link.ShortCode,
		ShortURL:  l.getShortURL(r, link.ShortCode),
		Target:    link.Target,
	}
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (l *LinksController) getShortURL(r *http.Request, code string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if l.baseURL == nil {
		return fmt.Sprintf("%s://%s/u/%s", scheme, r.Host, code)
	}
	return fmt.Sprintf("%s/u/%s", l.baseURL, code)
}

// validateURL проверяет, является ли строка корректным URL.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
