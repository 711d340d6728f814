package http

import (
	"context"

	http_router "github.com/lintang-b-s/Mincutx/pkg/http/router"
	"github.com/lintang-b-s/Mincutx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Mincutx/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use runs the API until ctx is canceled or the server fails.
func (s *Server) Use(
	ctx context.Context,
	useRateLimit bool,
	mincutService controllers.MincutService,
) error {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(s.Log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gCtx, config, useRateLimit, mincutService)
	})

	return g.Wait()
}
