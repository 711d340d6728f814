package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/Mincutx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type mincutAPI struct {
	mincutService MincutService
	hub           *Hub
	log           *zap.Logger
}

func New(mincutService MincutService, hub *Hub, log *zap.Logger) *mincutAPI {
	return &mincutAPI{
		mincutService: mincutService,
		hub:           hub,
		log:           log,
	}
}

func (api *mincutAPI) Routes(group *helper.RouteGroup) {
	group.POST("/mincut", api.mincut)
	group.GET("/ws/mincut", api.mincutWebsocket)
}

// mincut godoc
//
//	@Summary		minimum cut of a labeled graph
//	@Description	computes a global minimum cut; a disconnected graph under balanced cactus returns its connected components
//	@Tags			mincut
//	@Accept			json
//	@Produce		json
//	@Param			body	body		mincutRequest	true	"graph and configuration"
//	@Success		200		{object}	mincutResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/mincut [post]
func (api *mincutAPI) mincut(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request mincutRequest
		err     error
	)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.mincutService.Mincut(request.Nodes, request.Edges, request.Undirected,
		request.config(api.mincutService.DefaultConfig()))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMincutResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// mincutWebsocket upgrades the connection and hands it to the hub, which answers
// every text frame, a mincutRequest, with one response envelope until the
// client goes away.
func (api *mincutAPI) mincutWebsocket(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote", r.RemoteAddr))
		return
	}
	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	// the http server's deadlines do not apply to a hijacked websocket
	_ = conn.SetDeadline(time.Time{})
	if _, err := api.hub.Register(conn); err != nil {
		api.log.Error("register websocket user", zap.String("connection name", nameConn(conn)), zap.Error(err))
		_ = conn.Close()
	}
}
