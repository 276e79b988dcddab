package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/tinylinks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// requestContext контекст запроса с таймаутом по умолчанию.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), DefaultRequestTimeout)
}

// statusFromError сопоставляет ошибки сервисного слоя HTTP статусам.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrDuplicateEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithServiceError отдает клиенту статус по ошибке сервиса.
func abortWithServiceError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.String(status, ErrInternal.Error())
		return
	}
	c.String(status, errors.Cause(err).Error())
}
