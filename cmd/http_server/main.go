package main

import (
	"os"

	"github.com/radhian/commission-system/config"
	"github.com/radhian/commission-system/controllers"
	"github.com/radhian/commission-system/infra/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, os.Stdout)

	app := controllers.App{}
	app.Initialize(cfg)

	app.RunServer()
}
