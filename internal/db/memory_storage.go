package db

import "github.com/fsdevblog/tinylinks/internal/db/memory"

// MemoryStorage обертка над memory.MStorage.
type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{MStorage: memory.NewMemStorage()}
}
