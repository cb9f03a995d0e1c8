package main

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"
	"github.com/oklog/run"
	"github.com/patrickmn/go-cache"
	"github.com/radhian/commission-system/config"
	"github.com/radhian/commission-system/handler"
	"github.com/radhian/commission-system/infra/db/dao"
	"github.com/radhian/commission-system/infra/locker"
	"github.com/radhian/commission-system/infra/logger"
	calculationUsecase "github.com/radhian/commission-system/usecase/calculation"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startCommissionExecutorWorker(ctx context.Context, h *handler.CommissionHandler, workerID int) error {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		err := h.CommissionExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoProcessHandled):
			log.Debugf("[Worker %d] idle", workerID)
		case err != nil:
			log.Errorf("[Worker %d] error: %s", workerID, err.Error())
		default:
			log.Infof("[Worker %d] success", workerID)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
	Config *config.Config
}

func (a *App) Initialize(cfg *config.Config) {
	var err error
	a.Config = cfg

	a.DB, err = gorm.Open("postgres", cfg.DB.URI())
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.DB.Name, err)
	}
	log.Infof("We are connected to the database %s", cfg.DB.Name)

	if err := dao.Migrate(a.DB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	a.Locker = locker.New()
}

func (a *App) RunServer() error {
	cfg := CronWorkerConfig{
		Workers:  a.Config.Cron.Workers,
		Interval: a.Config.Cron.Interval,
	}

	// results are read through the http server, workers only need a throwaway cache
	uc := calculationUsecase.NewCalculationUsecase(dao.NewDaoMethod(a.DB), a.Locker, cache.New(cache.NoExpiration, 0), a.Config.UploadDir)
	h := handler.NewCommissionHandler(uc, a.Config.InputDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	for i := 0; i < cfg.Workers; i++ {
		workerID := i + 1
		workerCtx, workerCancel := context.WithCancel(ctx)
		g.Add(func() error {
			log.Infof("spawn [Worker %d]", workerID)
			return cfg.startCommissionExecutorWorker(workerCtx, h, workerID)
		}, func(error) {
			workerCancel()
		})
	}
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	return g.Run()
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, os.Stdout)

	app := App{}
	app.Initialize(cfg)
	defer app.DB.Close()

	err := app.RunServer()
	log.Infof("Cron server stopped: %v", err)
}
