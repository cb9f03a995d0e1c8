package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"
	"github.com/patrickmn/go-cache"
	"github.com/radhian/commission-system/config"
	"github.com/radhian/commission-system/handler"
	"github.com/radhian/commission-system/infra/db/dao"
	"github.com/radhian/commission-system/infra/locker"
	calculationUsecase "github.com/radhian/commission-system/usecase/calculation"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(cfg *config.Config) {
	var err error
	a.Config = cfg

	log.Infof("DB Config - Host: %q, Port: %q, User: %q, Name: %q", cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Name)

	a.DB, err = gorm.Open("postgres", cfg.DB.URI())
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.DB.Name, err)
	}
	log.Infof("We are connected to the database %s", cfg.DB.Name)

	if err := dao.Migrate(a.DB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	resultCache := cache.New(cfg.ResultCacheTTL, 2*cfg.ResultCacheTTL)
	uc := calculationUsecase.NewCalculationUsecase(dao.NewDaoMethod(a.DB), locker.New(), resultCache, cfg.UploadDir)
	a.Router = NewRouter(handler.NewCommissionHandler(uc, cfg.InputDir))
}

func (a *App) RunServer() {
	server := &http.Server{
		Addr:         ":" + a.Config.Port,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infof("Server starting on port %v", a.Config.Port)
	log.Fatal(server.ListenAndServe())
}
