package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/tinylinks/internal/db"
	"github.com/fsdevblog/tinylinks/internal/repositories/memstore"
	"github.com/fsdevblog/tinylinks/internal/repositories/sql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	LinkService *LinkService
	UserService *UserService
}

func Factory(conn any, sType ServiceType, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		return getInMemoryServices(logger), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger) *Services {
	linkRepo := sql.NewLinkRepo(conn, logger)
	userRepo := sql.NewUserRepo(conn, logger)
	return &Services{
		LinkService: NewLinkService(linkRepo),
		UserService: NewUserService(userRepo, NewBcryptHasher()),
	}
}

func getInMemoryServices(logger *logrus.Logger) *Services {
	// Раздельные хранилища: коды ссылок и идентификаторы пользователей
	// живут в разных пространствах ключей.
	linkRepo := memstore.NewLinkRepo(db.NewMemStorage(), logger)
	userRepo := memstore.NewUserRepo(db.NewMemStorage(), logger)
	return &Services{
		LinkService: NewLinkService(linkRepo),
		UserService: NewUserService(userRepo, NewBcryptHasher()),
	}
}
