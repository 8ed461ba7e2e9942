package wire

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/logger"
	"github.com/vovakirdan/wirechat-client/internal/session"
)

// Client owns the websocket connection to the chat server. Decoded
// server events come out of Triggers() in arrival order; transport and
// protocol errors out of Errors(). Both channels close when the
// connection is gone.
type Client struct {
	cfg     config.Config
	log     *logger.Logger
	conn    *conn
	writeCh chan Envelope
	trigCh  chan session.Trigger
	errCh   chan error

	mu        sync.Mutex
	connected bool
	cancel    context.CancelFunc
}

// NewClient constructs a client with the provided config. Connect must
// be called before Send.
func NewClient(cfg config.Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:     cfg,
		log:     log,
		writeCh: make(chan Envelope, 16),
		trigCh:  make(chan session.Trigger, 16),
		errCh:   make(chan error, 16),
	}
}

// Triggers returns the ordered stream of decoded server events.
func (c *Client) Triggers() <-chan session.Trigger { return c.trigCh }

// Errors returns transport and protocol errors that are not fatal to
// the caller.
func (c *Client) Errors() <-chan error { return c.errCh }

// Connect dials the server and starts the read and write loops. Unlike
// a handshake-based protocol there is no hello frame here: the first
// outbound message is the login the session machine emits.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return NewError(ErrorConnection, "already connected")
	}
	c.mu.Unlock()

	if err := c.cfg.Validate(); err != nil {
		return WrapError(ErrorInvalidConfig, "bad config", err)
	}

	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}

	ws, _, err := websocket.Dial(dialCtx, c.cfg.URL, nil)
	if err != nil {
		return WrapError(ErrorConnection, "dial "+c.cfg.URL, err)
	}

	connID := uuid.NewString()
	c.log.Info().Str("conn_id", connID).Str("url", c.cfg.URL).Msg("connected")

	c.conn = newConn(ws, c.cfg.ReadTimeout, c.cfg.WriteTimeout)

	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop(runCtx, connID)
	go c.writeLoop(runCtx, connID)
	return nil
}

// Send encodes one session outbound message and queues it for
// delivery. Fire-and-forget beyond the queue handoff.
func (c *Client) Send(ctx context.Context, msg session.ServerMessage, handle session.ServerHandle) error {
	c.mu.Lock()
	connected := c.connected
	c.mu.Unlock()
	if !connected {
		return NewError(ErrorNotConnected, "not connected")
	}

	env, err := EncodeMessage(msg, handle)
	if err != nil {
		return err
	}

	select {
	case c.writeCh <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts down the loops and closes the websocket.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.connected = false
	c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close(websocket.StatusNormalClosure, "client close")
	}
	return nil
}

func (c *Client) readLoop(ctx context.Context, connID string) {
	defer close(c.trigCh)
	for {
		var frame ServerFrame
		if err := c.conn.Read(ctx, &frame); err != nil {
			if isExpectedDisconnect(ctx, err) {
				return
			}
			c.fireError(WrapError(ErrorConnection, "read", err))
			c.log.Warn().Str("conn_id", connID).Err(err).Msg("read loop exit")
			return
		}

		trig, err := DecodeTrigger(frame)
		if err != nil {
			c.fireError(err)
			c.log.Debug().Str("conn_id", connID).Err(err).Msg("frame dropped")
			continue
		}

		select {
		case c.trigCh <- trig:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) writeLoop(ctx context.Context, connID string) {
	for {
		select {
		case env := <-c.writeCh:
			if err := c.conn.Write(ctx, env); err != nil {
				c.fireError(WrapError(ErrorConnection, "write", err))
				c.log.Warn().Str("conn_id", connID).Err(err).Msg("write loop exit")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) fireError(err error) {
	select {
	case c.errCh <- err:
	default:
		// Error channel full; the log entry is the fallback.
	}
}

func isExpectedDisconnect(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}
