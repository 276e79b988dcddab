package memstore

import (
	"errors"

	"github.com/fsdevblog/tinylinks/internal/db/memory"
	"github.com/fsdevblog/tinylinks/internal/repositories"
)

// convertErrorType приводит ошибки хранилища к ошибкам слоя репозитория.
func convertErrorType(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memory.ErrNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, memory.ErrDuplicateKey):
		return repositories.ErrDuplicateKey
	default:
		return repositories.ErrUnknown
	}
}
