package main

import (
	"github.com/fsdevblog/tinylinks/internal/app"
	"github.com/fsdevblog/tinylinks/internal/config"
)

func main() {
	appConf, confErr := config.LoadConfig()
	if confErr != nil {
		panic(confErr)
	}

	a := app.Must(app.New(*appConf))

	a.Logger.Infof("Starting server on %s (storage: %s)", appConf.ServerAddress, appConf.DBType)
	if err := a.Run(); err != nil {
		panic(err)
	}
}
