package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/tinylinks/internal/db"
	"github.com/fsdevblog/tinylinks/internal/db/memory"
	"github.com/fsdevblog/tinylinks/internal/models"
	"github.com/sirupsen/logrus"
)

// LinkRepo репозиторий ссылок в памяти. Записи хранятся по ключу ShortCode.
//
// Мьютекс mu сериализует все мутации над записями: цикл чтение-изменение-запись
// (RecordVisit, UpdateTarget) не должен пересекаться с конкурентным Delete.
// При гонке удаление побеждает: после Delete любая операция над кодом
// возвращает repositories.ErrNotFound.
type LinkRepo struct {
	s      *db.MemoryStorage
	mu     sync.Mutex
	logger *logrus.Entry
}

func NewLinkRepo(store *db.MemoryStorage, logger *logrus.Logger) *LinkRepo {
	return &LinkRepo{
		s:      store,
		logger: logger.WithField("module", "repository/memstore/link"),
	}
}

// Create создает новую запись. Если код уже занят - repositories.ErrDuplicateKey.
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := memory.Set[models.Link](ctx, link.ShortCode, link, l.s.MStorage); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	return nil
}

// GetByShortCode получает запись по короткому коду.
func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, code, l.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short code %s: %w",
			code, convertErrorType(err),
		)
	}
	return link, nil
}

// GetAllByOwnerID получает все записи владельца.
// Порядок стабильный между вызовами - сортируем по коду.
func (l *LinkRepo) GetAllByOwnerID(ctx context.Context, ownerID string) ([]models.Link, error) {
	data, err := memory.FilterAll[models.Link](ctx, l.s.MStorage, func(val models.Link) bool {
		if val.OwnerID == "" {
			return false
		}
		return val.OwnerID == ownerID
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get records by owner id %s: %w",
			ownerID, convertErrorType(err),
		)
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].ShortCode < data[j].ShortCode
	})
	return data, nil
}

// UpdateTarget заменяет целевой URL записи.
func (l *LinkRepo) UpdateTarget(ctx context.Context, code, target string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	link, err := memory.Get[models.Link](ctx, code, l.s.MStorage)
	if err != nil {
		return fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}
	link.Target = target
	link.UpdatedAt = time.Now().UTC()

	if setErr := memory.Set[models.Link](ctx, code, link, l.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return fmt.Errorf("failed to update record %s: %w", code, convertErrorType(setErr))
	}
	return nil
}

// Delete удаляет запись целиком.
func (l *LinkRepo) Delete(ctx context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := memory.Delete(ctx, code, l.s.MStorage); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", code, convertErrorType(err))
	}
	return nil
}

// RecordVisit фиксирует посещение: безусловно инкрементирует счетчик,
// дописывает момент посещения в журнал посетителя и возвращает обновленную
// запись. Если кода нет - repositories.ErrNotFound.
func (l *LinkRepo) RecordVisit(ctx context.Context, code, visitorKey string, ts time.Time) (*models.Link, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	link, err := memory.Get[models.Link](ctx, code, l.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}

	link.VisitCount++
	if link.VisitorLog == nil {
		link.VisitorLog = make(map[string][]time.Time)
	}
	link.VisitorLog[visitorKey] = append(link.VisitorLog[visitorKey], ts)

	if setErr := memory.Set[models.Link](ctx, code, link, l.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return nil, fmt.Errorf("failed to record visit for %s: %w", code, convertErrorType(setErr))
	}
	return link, nil
}
