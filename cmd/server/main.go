package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/Mincutx/pkg/engine/viecut"
	"github.com/lintang-b-s/Mincutx/pkg/http"
	"github.com/lintang-b-s/Mincutx/pkg/http/usecases"
	"github.com/lintang-b-s/Mincutx/pkg/logger"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the global rate limiter (RATE_LIMIT_RPS, RATE_LIMIT_BURST)")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	mincutEngine := viecut.NewEngine(mincut.WorkersFromViper(), logger)
	mincutService := usecases.NewMincutService(mincutEngine, mincut.ConfigFromViper(), logger)

	ctx, cleanup := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cleanup()

	api := http.NewServer(logger)
	if err := api.Use(ctx, *useRateLimit, mincutService); err != nil && ctx.Err() == nil {
		logger.Fatal("Mincutx server failed", zap.Error(err))
	}

	logger.Info("Mincutx Server Stopped")
}
