package services

import (
	"context"
	"time"

	"github.com/fsdevblog/tinylinks/internal/models"
)

// LinkRepository описывает репозиторий для ссылок.
type LinkRepository interface {
	// Create создает запись. Если код занят - repositories.ErrDuplicateKey.
	Create(ctx context.Context, link *models.Link) error
	// GetByShortCode находит запись по короткому коду.
	GetByShortCode(ctx context.Context, code string) (*models.Link, error)
	// GetAllByOwnerID возвращает записи владельца в стабильном порядке.
	GetAllByOwnerID(ctx context.Context, ownerID string) ([]models.Link, error)
	// UpdateTarget заменяет целевой URL записи.
	UpdateTarget(ctx context.Context, code, target string) error
	// Delete удаляет запись целиком.
	Delete(ctx context.Context, code string) error
	// RecordVisit атомарно фиксирует посещение и возвращает обновленную запись.
	RecordVisit(ctx context.Context, code, visitorKey string, ts time.Time) (*models.Link, error)
}

// UserRepository описывает репозиторий для учетных записей.
type UserRepository interface {
	// Create создает запись. Если email занят - repositories.ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error
	// GetByID находит запись по идентификатору.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetAll возвращает все записи.
	GetAll(ctx context.Context) ([]models.User, error)
}
