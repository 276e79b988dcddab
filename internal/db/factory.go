package db

import (
	"context"
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType StorageType
	SQLitePath  *string
}

func NewConnectionFactory(_ context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypeSQLite:
		if config.SQLitePath == nil {
			return nil, errors.New("sqlite path is empty")
		}
		conn, err := NewSQLite(*config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
