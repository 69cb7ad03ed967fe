package main

import (
	"context"
	"fmt"

	"github.com/mkalinin/shopadmin/internal/adapter/auth"
	"github.com/mkalinin/shopadmin/internal/adapter/cache"
	"github.com/mkalinin/shopadmin/internal/adapter/config"
	"github.com/mkalinin/shopadmin/internal/adapter/handler/http"
	"github.com/mkalinin/shopadmin/internal/adapter/logger"
	"github.com/mkalinin/shopadmin/internal/adapter/storage"
	"github.com/mkalinin/shopadmin/internal/adapter/storage/repository"
	"github.com/mkalinin/shopadmin/internal/core/port"
	"github.com/mkalinin/shopadmin/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.Auth.TokenKey)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	var statsCache port.StatsCache
	if conf.Cache.Addr != "" {
		c, err := cache.NewStatsCache(ctx, conf.Cache)
		if err != nil {
			log.Error("stats cache creating error", zap.Error(err))
			return
		}
		statsCache = c
	}

	svc, err := service.NewService(repo, statsCache, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	dashboardHandler, err := http.NewDashboardHandler(svc, log.Named("Dashboard handler"))
	if err != nil {
		log.Error("dashboard handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, paymentHandler, dashboardHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
