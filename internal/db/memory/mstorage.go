package memory

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное хранилище ключ/значение в памяти.
// Значения сериализуются в json, чтобы наружу всегда отдавались копии,
// а не указатели на внутреннее состояние.
type MStorage struct {
	data map[string][]byte
	mu   sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// SetOptions настройки записи.
type SetOptions struct {
	overwrite bool
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.overwrite = true
	}
}

// Get возвращает значение по ключу. Если ключа нет - ErrNotFound.
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set сохраняет пару ключ/значение. Ключ обязан быть уникальным, иначе
// вернется ErrDuplicateKey (если не задан WithOverwrite).
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; ok && !options.overwrite {
		return ErrDuplicateKey
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	m.data[key] = bytes
	return nil
}

// Delete удаляет ключ. Если ключа нет - ErrNotFound.
func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// GetAll возвращает все значения хранилища. Сразу пачкой.
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, m, func(T) bool { return true })
}

// FilterAll возвращает значения, для которых fn вернула true.
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(val T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result = make([]T, 0, len(m.data))
	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}
