package sql

import (
	"errors"

	"github.com/fsdevblog/tinylinks/internal/repositories"
	"gorm.io/gorm"
)

// convertErrorType приводит ошибки gorm к ошибкам слоя репозитория.
func convertErrorType(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicateKey
	default:
		return repositories.ErrUnknown
	}
}
