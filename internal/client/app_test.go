package client

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wirechat-client/internal/display"
	"github.com/vovakirdan/wirechat-client/internal/logger"
	"github.com/vovakirdan/wirechat-client/internal/session"
)

const testTimeout = 2 * time.Second

type sentMsg struct {
	msg    session.ServerMessage
	handle session.ServerHandle
}

// fakeConn uses unbuffered channels so each push and send is a
// synchronization point with the loop goroutine.
type fakeConn struct {
	trigs chan session.Trigger
	errs  chan error
	sends chan sentMsg
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		trigs: make(chan session.Trigger),
		errs:  make(chan error),
		sends: make(chan sentMsg),
	}
}

func (f *fakeConn) Triggers() <-chan session.Trigger { return f.trigs }
func (f *fakeConn) Errors() <-chan error             { return f.errs }

func (f *fakeConn) Send(ctx context.Context, msg session.ServerMessage, handle session.ServerHandle) error {
	select {
	case f.sends <- sentMsg{msg: msg, handle: handle}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeConn) push(t *testing.T, trig session.Trigger) {
	t.Helper()
	select {
	case f.trigs <- trig:
	case <-time.After(testTimeout):
		t.Fatalf("loop did not consume trigger %s", trig)
	}
}

func (f *fakeConn) recvSend(t *testing.T) sentMsg {
	t.Helper()
	select {
	case got := <-f.sends:
		return got
	case <-time.After(testTimeout):
		t.Fatal("no outbound message")
		return sentMsg{}
	}
}

func write(t *testing.T, w io.Writer, line string) {
	t.Helper()
	_, err := io.WriteString(w, line)
	require.NoError(t, err)
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(testTimeout):
		t.Fatal("loop did not stop")
		return nil
	}
}

func TestAppLifecycle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFakeConn()
	var buf bytes.Buffer
	app := New(pr, f, display.New(&buf), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	write(t, pw, "alice\n")
	got := f.recvSend(t)
	assert.Equal(t, session.Login{Nick: "alice"}, got.msg)
	assert.Equal(t, session.ServerHandle(""), got.handle)

	f.push(t, session.LoggedIn{Nick: "alice", Handle: "s-1"})

	write(t, pw, "\\join lobby\n")
	got = f.recvSend(t)
	assert.Equal(t, session.JoinRoom{Nick: "alice", Room: "lobby"}, got.msg)
	assert.Equal(t, session.ServerHandle("s-1"), got.handle)

	f.push(t, session.Joined{Room: "lobby"})

	write(t, pw, "hello there\n")
	got = f.recvSend(t)
	assert.Equal(t, session.SendChat{Nick: "alice", Body: "hello there"}, got.msg)

	f.push(t, session.ChatMessage{From: "bob", Body: "hi"})

	write(t, pw, "  \\quit  \n")
	require.NoError(t, waitDone(t, done))

	out := buf.String()
	assert.Contains(t, out, "Logged in successfully.")
	assert.Contains(t, out, "Joined room!")
	assert.Contains(t, out, ">>> bob: hi")
	assert.Contains(t, out, "Bye!")
}

func TestAppLogoutUsesOldHandle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFakeConn()
	var buf bytes.Buffer
	app := New(pr, f, display.New(&buf), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	f.push(t, session.LoggedIn{Nick: "alice", Handle: "s-1"})

	write(t, pw, "\\logout\n")
	got := f.recvSend(t)
	assert.Equal(t, session.RequestLogout{}, got.msg)
	assert.Equal(t, session.ServerHandle("s-1"), got.handle)

	write(t, pw, "\\quit\n")
	require.NoError(t, waitDone(t, done))
}

func TestAppStopsOnInputClose(t *testing.T) {
	pr, pw := io.Pipe()
	f := newFakeConn()
	var buf bytes.Buffer
	app := New(pr, f, display.New(&buf), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	require.NoError(t, pw.Close())
	require.NoError(t, waitDone(t, done))
}

func TestAppStopsWhenServerCloses(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFakeConn()
	var buf bytes.Buffer
	app := New(pr, f, display.New(&buf), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	close(f.trigs)
	require.NoError(t, waitDone(t, done))
	assert.Contains(t, buf.String(), "Connection closed by server.")
}

func TestAppDisplaysTransportErrors(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFakeConn()
	var buf bytes.Buffer
	app := New(pr, f, display.New(&buf), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case f.errs <- io.ErrUnexpectedEOF:
	case <-time.After(testTimeout):
		t.Fatal("loop did not consume error")
	}

	write(t, pw, "\\quit\n")
	require.NoError(t, waitDone(t, done))
	assert.Contains(t, buf.String(), "error: unexpected EOF")
}
