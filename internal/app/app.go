package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tinylinks/internal/config"
	"github.com/fsdevblog/tinylinks/internal/controllers"
	"github.com/fsdevblog/tinylinks/internal/controllers/middlewares"
	"github.com/fsdevblog/tinylinks/internal/db"
	"github.com/fsdevblog/tinylinks/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	dbServices, servicesErr := initServices(context.Background(), conf)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Logger:     conf.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		LinkService: a.dbServices.LinkService,
		UserService: a.dbServices.UserService,
		Sessions:    middlewares.NewSessionManager([]byte(a.config.JWTSecret)),
		AppConf:     &a.config,
		Logger:      a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}
	return serverErr
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(ctx context.Context, appConf config.Config) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType: whatIsDBStorageType(&appConf),
		SQLitePath:  &appConf.SQLitePath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(&appConf), appConf.Logger)
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	if appConf.DBType == config.DBTypeSQLite {
		return db.StorageTypeSQLite
	}
	return db.StorageTypeInMemory
}

func whatIsServiceType(appConf *config.Config) services.ServiceType {
	if appConf.DBType == config.DBTypeSQLite {
		return services.ServiceTypeSQLite
	}
	return services.ServiceTypeInMemory
}
