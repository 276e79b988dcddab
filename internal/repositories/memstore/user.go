package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/tinylinks/internal/db"
	"github.com/fsdevblog/tinylinks/internal/db/memory"
	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/fsdevblog/tinylinks/internal/repositories"
	"github.com/sirupsen/logrus"
)

// UserRepo репозиторий учетных записей в памяти. Записи хранятся по ключу ID.
type UserRepo struct {
	s      *db.MemoryStorage
	mu     sync.Mutex
	logger *logrus.Entry
}

func NewUserRepo(store *db.MemoryStorage, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		s:      store,
		logger: logger.WithField("module", "repository/memstore/user"),
	}
}

// Create создает учетную запись. Уникальность email проверяется под мьютексом,
// чтобы конкурентная регистрация одного и того же адреса не прошла дважды.
func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	same, err := memory.FilterAll[models.User](ctx, u.s.MStorage, func(val models.User) bool {
		return val.Email == user.Email
	})
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", convertErrorType(err))
	}
	if len(same) > 0 {
		return repositories.ErrDuplicateKey
	}

	if setErr := memory.Set[models.User](ctx, user.ID, user, u.s.MStorage); setErr != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(setErr))
	}
	return nil
}

// GetByID получает учетную запись по идентификатору.
func (u *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := memory.Get[models.User](ctx, id, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id %s: %w", id, convertErrorType(err))
	}
	return user, nil
}

// GetAll возвращает все учетные записи. Сразу пачкой.
func (u *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := memory.GetAll[models.User](ctx, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", convertErrorType(err))
	}
	return users, nil
}
