package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/Mincutx/pkg/concurrent"
	"github.com/mailru/easygo/netpoll"
	"go.uber.org/zap"
)

type User struct {
	io   sync.Mutex
	conn net.Conn
	desc *netpoll.Desc

	id  uint
	hub *Hub
}

// readRequest returns the next mincut request, or nil when the frame was a
// control frame that has been handled.
func (u *User) readRequest() (*mincutRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	// the rest of the frame is always drained so the next read starts on a
	// frame boundary
	req := &mincutRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return nil, errBadFrame{err}
	}
	_, _ = io.Copy(io.Discard, r)
	return req, nil
}

type errBadFrame struct {
	err error
}

func (e errBadFrame) Error() string {
	return "malformed request: " + e.err.Error()
}

func (u *User) Mincut() error {
	req, err := u.readRequest()
	var badFrame errBadFrame
	if errors.As(err, &badFrame) {
		return u.write(errorEnvelope(http.StatusBadRequest, badFrame.Error()))
	}
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	if err := validateRequest(req); err != nil {
		return u.write(errorEnvelope(http.StatusBadRequest, err.Error()))
	}

	svc := u.hub.mincutService
	res, err := svc.Mincut(req.Nodes, req.Edges, req.Undirected, req.config(svc.DefaultConfig()))
	if err != nil {
		status := statusCode(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = http.StatusText(status)
		}
		return u.write(errorEnvelope(status, message))
	}
	return u.write(envelope{"data": NewMincutResponse(res)})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

/*
Hub keeps track of the open websocket users. Their connections sit in the
poller's interest list in one-shot mode: a readable connection gets one
request answered on the goroutine pool and is then re-armed, so no goroutine
is parked per idle user.
*/
type Hub struct {
	mu            sync.RWMutex
	seq           uint
	us            []*User
	ns            map[uint]*User
	mincutService MincutService

	poller netpoll.Poller
	pool   *concurrent.GoroutinePool
	log    *zap.Logger
}

func NewHub(mincutService MincutService, poller netpoll.Poller, pool *concurrent.GoroutinePool, log *zap.Logger) *Hub {
	return &Hub{
		ns:            make(map[uint]*User),
		us:            make([]*User, 0),
		mincutService: mincutService,
		poller:        poller,
		pool:          pool,
		log:           log,
	}
}

// Register adds conn to the hub and starts polling it for requests. The hub
// owns conn from now on and closes it on Remove.
func (h *Hub) Register(conn net.Conn) (*User, error) {
	desc, err := netpoll.HandleReadOnce(conn)
	if err != nil {
		return nil, err
	}
	user := &User{
		hub:  h,
		conn: conn,
		desc: desc,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	if err := h.poller.Start(desc, h.onEvent(user)); err != nil {
		h.Remove(user)
		return nil, err
	}
	return user, nil
}

func (h *Hub) onEvent(user *User) func(netpoll.Event) {
	return func(ev netpoll.Event) {
		if ev&(netpoll.EventReadHup|netpoll.EventHup) != 0 {
			h.log.Info("user disconnected from websocket", zap.String("connection name", nameConn(user.conn)))
			h.Remove(user)
			return
		}

		h.pool.Schedule(func() {
			err := user.Mincut()
			var closed wsutil.ClosedError
			switch {
			case err == nil:
				if err := h.poller.Resume(user.desc); err != nil {
					h.Remove(user)
				}
			case errors.As(err, &closed), errors.Is(err, io.EOF):
				h.Remove(user)
			default:
				h.log.Info("websocket connection closed", zap.String("connection name", nameConn(user.conn)),
					zap.Error(err))
				h.Remove(user)
			}
		})
	}
}

// Remove stops polling user, closes its connection and forgets it.
func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(user)
}

func (h *Hub) remove(user *User) {
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	_ = h.poller.Stop(user.desc)
	_ = user.desc.Close()
	_ = user.conn.Close()

	// us stays sorted by id since ids are handed out increasing
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// RemoveAllUser closes every open connection and forgets its user.
func (h *Hub) RemoveAllUser() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, user := range append([]*User(nil), h.us...) {
		h.remove(user)
	}
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
