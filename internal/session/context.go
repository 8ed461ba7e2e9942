// Package session implements the client-side session core: the line
// parser that turns raw terminal input into commands or chat text, and
// the state machine that drives the session through its lifecycle.
//
// The package is pure: nothing here performs I/O, logs, or spawns
// goroutines. Callers own the single live Context value and thread it
// through Step; concurrency is handled outside by feeding triggers
// through one ordered queue.
package session

// ServerHandle addresses the authenticated server-side session. It is
// issued by the server on login and only carried through transitions;
// the core never constructs or inspects one.
type ServerHandle string

// State identifies the current phase of the session lifecycle.
type State int

const (
	// StateConnecting means no identity is established yet.
	StateConnecting State = iota

	// StateConnected means the user is logged in but not in a room.
	StateConnected

	// StateChatting means the user is logged in and inside one room.
	StateChatting
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateChatting:
		return "chatting"
	default:
		return "unknown"
	}
}

// Context pairs the current state with the session data valid in it.
// Exactly one variant exists per state; fields that are not valid in a
// state simply do not exist on its variant. The closed set of variants
// is Connecting, Connected and Chatting.
type Context interface {
	State() State
	isContext()
}

// Connecting carries no data: no identity is established.
type Connecting struct{}

// Connected holds the identity established by a successful login.
type Connected struct {
	Nick   string
	Handle ServerHandle
}

// Chatting additionally records the single room the user is in.
type Chatting struct {
	Nick   string
	Room   string
	Handle ServerHandle
}

func (Connecting) State() State { return StateConnecting }
func (Connected) State() State  { return StateConnected }
func (Chatting) State() State   { return StateChatting }

func (Connecting) isContext() {}
func (Connected) isContext()  {}
func (Chatting) isContext()   {}
