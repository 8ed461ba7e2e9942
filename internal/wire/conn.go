package wire

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// conn is the framed websocket connection: ServerFrames in, Envelopes
// out, each operation bounded by its own timeout when one is set.
type conn struct {
	ws           *websocket.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func newConn(ws *websocket.Conn, readTimeout, writeTimeout time.Duration) *conn {
	return &conn{ws: ws, readTimeout: readTimeout, writeTimeout: writeTimeout}
}

func (c *conn) Read(ctx context.Context, frame *ServerFrame) error {
	ctx, cancel := withTimeout(ctx, c.readTimeout)
	defer cancel()
	return wsjson.Read(ctx, c.ws, frame)
}

func (c *conn) Write(ctx context.Context, env Envelope) error {
	ctx, cancel := withTimeout(ctx, c.writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, c.ws, env)
}

func (c *conn) Close(code websocket.StatusCode, reason string) error {
	return c.ws.Close(code, reason)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
