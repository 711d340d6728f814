package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/Mincutx/pkg/engine/viecut"
	"github.com/lintang-b-s/Mincutx/pkg/http/usecases"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type response struct {
	Data struct {
		Kind           string     `json:"kind"`
		HeavyPartition []string   `json:"heavy_partition"`
		LightPartition []string   `json:"light_partition"`
		Components     [][]string `json:"components"`
		CutSize        int        `json:"cut_size"`
		Legacy         []any      `json:"legacy"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestAPI(t *testing.T, useRateLimit bool) (*API, http.Handler) {
	t.Helper()
	svc := usecases.NewMincutService(viecut.NewEngine(2, zap.NewNop()),
		mincut.NewConfig("noi", "bqueue", false), zap.NewNop())
	api := NewAPI(zap.NewNop())
	h, err := api.Handler(useRateLimit, svc)
	require.NoError(t, err)
	t.Cleanup(api.closeWebsockets)
	return api, h
}

func newTestHandler(t *testing.T, useRateLimit bool) http.Handler {
	t.Helper()
	_, h := newTestAPI(t, useRateLimit)
	return h
}

func postMincut(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/mincut", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

const threeTriangles = `{
	"edges": [["a","b"],["b","c"],["c","a"],["d","e"],["e","f"],["f","d"],["g","h"],["h","i"],["i","g"]],
	"undirected": true,
	"algorithm": "cactus",
	"balanced": true
}`

func TestMincutEndpoint(t *testing.T) {
	h := newTestHandler(t, false)

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		check          func(t *testing.T, resp response)
	}{
		{
			name:           "three triangles become components",
			body:           threeTriangles,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp response) {
				assert.Equal(t, "components", resp.Data.Kind)
				assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g", "h", "i"}}, resp.Data.Components)
				require.Len(t, resp.Data.Legacy, 4)
				assert.Equal(t, float64(0), resp.Data.Legacy[3])
			},
		},
		{
			name:           "bridge between two triangles",
			body:           `{"edges": [["a","b"],["b","c"],["c","a"],["c","d"],["d","e"],["e","f"],["f","d"]], "undirected": true, "queue_implementation": "heap"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp response) {
				assert.Equal(t, "bipartition", resp.Data.Kind)
				assert.Equal(t, 1, resp.Data.CutSize)
				assert.Equal(t, []string{"a", "b", "c"}, resp.Data.HeavyPartition)
				assert.Equal(t, []string{"d", "e", "f"}, resp.Data.LightPartition)
			},
		},
		{
			name:           "unsupported algorithm",
			body:           `{"nodes": ["a","b"], "algorithm": "karger"}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp response) {
				assert.Contains(t, resp.Error.Message, "unsupported configuration")
			},
		},
		{
			name:           "empty graph fails validation",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp response) {
				assert.Contains(t, resp.Error.Message, "validation error")
			},
		},
		{
			name:           "malformed json",
			body:           `{"nodes": [`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postMincut(t, h, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	h := newTestHandler(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/mincut", strings.NewReader(`{"nodes":["a"]}`))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
	assert.Equal(t, "10.0.0.7", realIP(req))
}

func TestRateLimit(t *testing.T) {
	viper.Set("RATE_LIMIT_RPS", 0.001)
	viper.Set("RATE_LIMIT_BURST", 1)
	t.Cleanup(viper.Reset)
	h := newTestHandler(t, true)

	rec, _ := postMincut(t, h, `{"nodes":["a","b"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, resp := postMincut(t, h, `{"nodes":["a","b"]}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded", resp.Error.Message)
}

func TestMincutWebsocket(t *testing.T) {
	api, h := newTestAPI(t, false)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/mincut"
	conn, _, _, err := ws.Dial(ctx, url)
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 2; i++ {
		require.NoError(t, wsutil.WriteClientText(conn, []byte(threeTriangles)))
		msg, err := wsutil.ReadServerText(conn)
		require.NoError(t, err)

		var resp response
		require.NoError(t, json.NewDecoder(bytes.NewReader(msg)).Decode(&resp))
		assert.Equal(t, "components", resp.Data.Kind)
		assert.Len(t, resp.Data.Components, 3)
	}

	require.NoError(t, wsutil.WriteClientText(conn, []byte(`{"nodes": ["a"], "queue_implementation": "fifo"}`)))
	msg, err := wsutil.ReadServerText(conn)
	require.NoError(t, err)
	var resp response
	require.NoError(t, json.Unmarshal(msg, &resp))
	assert.Equal(t, http.StatusText(http.StatusBadRequest), resp.Error.Code)

	assert.Equal(t, 1, api.hub.Len())

	// a close frame from the client drops the user from the hub
	require.NoError(t, wsutil.WriteClientMessage(conn, ws.OpClose, ws.NewCloseFrameBody(ws.StatusNormalClosure, "")))
	assert.Eventually(t, func() bool { return api.hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
