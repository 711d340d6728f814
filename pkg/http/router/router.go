package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/Mincutx/pkg/concurrent"
	"github.com/lintang-b-s/Mincutx/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/Mincutx/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/Mincutx/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/mailru/easygo/netpoll"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type API struct {
	log    *zap.Logger
	hub    *controllers.Hub
	poller netpoll.Poller
	pool   *concurrent.GoroutinePool
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the routed, middleware wrapped API together with the poller
// and goroutine pool that serve websocket users.
func (api *API) Handler(useRateLimit bool, mincutService controllers.MincutService) (http.Handler, error) {
	var err error
	api.poller, err = netpoll.New(nil)
	if err != nil {
		return nil, fmt.Errorf("websocket poller: %w", err)
	}

	viper.SetDefault("WEBSOCKET_WORKERS", 64)
	viper.SetDefault("WEBSOCKET_QUEUE", 16)
	api.pool = concurrent.NewGoroutinePool(viper.GetInt("WEBSOCKET_WORKERS"), viper.GetInt("WEBSOCKET_QUEUE"))
	api.pool.Spawn(1)

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := router_helper.NewRouteGroup(router, "/api")

	api.hub = controllers.NewHub(mincutService, api.poller, api.pool, api.log)
	mincutRoutes := controllers.New(mincutService, api.hub, api.log)
	mincutRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels}
	if useRateLimit {
		mwChain = append(mwChain, Limit)
	}
	return alice.New(mwChain...).Then(router), nil
}

// closeWebsockets drops every websocket user and stops the idle pool workers.
func (api *API) closeWebsockets() {
	api.hub.RemoveAllUser()
	api.pool.Close()
}

//	@title			Mincutx API
//	@version		1.0
//	@description	Global minimum cuts of labeled graphs.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,

	useRateLimit bool,
	mincutService controllers.MincutService,
) error {
	api.log.Info("Run httprouter API")

	handler, err := api.Handler(useRateLimit, mincutService)
	if err != nil {
		return err
	}
	srv := http_server.New(ctx, handler, config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		api.closeWebsockets()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		// hijacked websocket connections are not tracked by Shutdown
		api.closeWebsockets()
		return err
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
