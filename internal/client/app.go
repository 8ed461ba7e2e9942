// Package client runs the session loop: it funnels terminal lines and
// decoded server events into one ordered stream, drives the session
// state machine one trigger at a time, and executes the actions each
// step emits before looking at the next trigger.
package client

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/vovakirdan/wirechat-client/internal/display"
	"github.com/vovakirdan/wirechat-client/internal/logger"
	"github.com/vovakirdan/wirechat-client/internal/session"
)

// quitSentinel tears the client down. It is intercepted before
// parsing, so the session core never sees it.
const quitSentinel = `\quit`

// ServerConn is the transport the loop talks to. Implemented by
// wire.Client.
type ServerConn interface {
	Triggers() <-chan session.Trigger
	Errors() <-chan error
	Send(ctx context.Context, msg session.ServerMessage, handle session.ServerHandle) error
}

// App owns the single live session context. All state mutation happens
// on the loop goroutine; no locks are needed.
type App struct {
	in   io.Reader
	conn ServerConn
	out  *display.Renderer
	log  *logger.Logger
}

// New constructs the session loop reading terminal lines from in.
func New(in io.Reader, conn ServerConn, out *display.Renderer, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{in: in, conn: conn, out: out, log: log}
}

// Run processes triggers until the input closes, the quit sentinel
// arrives, the server connection ends, or ctx is cancelled. One
// trigger is processed to completion, all of its actions included,
// before the next is considered.
func (a *App) Run(ctx context.Context) error {
	lines := make(chan string)
	go readLines(a.in, lines)

	// Local copy so the case can be disabled (nil channel) if the
	// transport closes its error stream.
	errs := a.conn.Errors()

	cur := session.Context(session.Connecting{})
	a.out.Line("Pick a nickname to log in. Type " + quitSentinel + " to exit.")

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			a.log.Warn().Err(err).Msg("transport error")
			a.out.Error(err)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == quitSentinel {
				a.out.Line("Bye!")
				return nil
			}
			cur = a.step(ctx, cur, session.InputLine{Raw: line})
		case trig, ok := <-a.conn.Triggers():
			if !ok {
				a.out.Line("Connection closed by server.")
				return nil
			}
			cur = a.step(ctx, cur, trig)
		}
	}
}

// step runs one transition and executes its actions in emission order.
// Outbound sends are addressed with the pre-transition handle: a
// logout must still reach the session it is dropping.
func (a *App) step(ctx context.Context, cur session.Context, trig session.Trigger) session.Context {
	next, actions := session.Step(cur, trig)
	if next.State() != cur.State() {
		a.log.Info().
			Stringer("from", cur.State()).
			Stringer("to", next.State()).
			Msg("state transition")
	}

	handle := handleOf(cur)
	for _, act := range actions {
		switch act := act.(type) {
		case session.Display:
			a.out.Line(act.Text)
		case session.SendToServer:
			if err := a.conn.Send(ctx, act.Msg, handle); err != nil {
				a.log.Warn().Err(err).Msg("send failed")
				a.out.Error(err)
			}
		}
	}
	return next
}

func handleOf(ctx session.Context) session.ServerHandle {
	switch c := ctx.(type) {
	case session.Connected:
		return c.Handle
	case session.Chatting:
		return c.Handle
	default:
		return ""
	}
}

func readLines(r io.Reader, dst chan<- string) {
	defer close(dst)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		dst <- scanner.Text()
	}
}
