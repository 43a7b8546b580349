package signal

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/quantummeet/meet-server/internal/app"
	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
)

type Controller struct {
	Relay      *app.Relay
	ReadLimit  int64
	PingPeriod time.Duration
}

func NewController(relay *app.Relay, readLimit int64, pingPeriod time.Duration) *Controller {
	return &Controller{
		Relay:      relay,
		ReadLimit:  readLimit,
		PingPeriod: pingPeriod,
	}
}

type wsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return core.ErrConnClosed
	}
	select {
	case c.send <- f:
	default:
		return core.ErrBackpressure
	}
	return nil
}

func (c *wsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and runs the connection's pumps.
// Each WebSocket session gets a fresh connection id; the browser's
// client token only ties sessions together in logs.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	pid := domain.PeerID(uuid.NewString())
	log.Info().Str("module", "signal").Str("pid", string(pid)).Str("ct", c.GetString("client_token")).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}
	if ctl.ReadLimit > 0 {
		ws.SetReadLimit(ctl.ReadLimit)
	}

	conn := &wsSignalConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	sess := core.NewPeerSession(&domain.Peer{ID: pid}, conn)
	ctx, cancel := context.WithCancel(ctx)
	ctl.Relay.Registry.BindSignal(pid, sess, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, pid, conn)
}
