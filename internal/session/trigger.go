package session

import "fmt"

// Trigger is anything that can drive the state machine forward: one
// parsed-ready local input line, or one remote event pushed by the
// server. Triggers must reach Step one at a time, in order.
type Trigger interface {
	fmt.Stringer
	isTrigger()
}

// InputLine is one raw line read from the terminal.
type InputLine struct {
	Raw string
}

// LoggedIn confirms a login attempt and carries the session handle.
type LoggedIn struct {
	Nick   string
	Handle ServerHandle
}

// NameTaken rejects a login attempt because the nickname is in use.
type NameTaken struct {
	Nick string
}

// Joined confirms that the user entered a room.
type Joined struct {
	Room string
}

// RoomList carries the room names requested via ListRooms, in server
// order.
type RoomList struct {
	Rooms []string
}

// ChatMessage is one message from a room participant.
type ChatMessage struct {
	From string
	Body string
}

// ChatLog is the room's recent messages, delivered on join, in order.
type ChatLog struct {
	Messages []ChatMessage
}

// LeftRoom confirms that the user exited the current room.
type LeftRoom struct{}

func (InputLine) isTrigger()   {}
func (LoggedIn) isTrigger()    {}
func (NameTaken) isTrigger()   {}
func (Joined) isTrigger()      {}
func (RoomList) isTrigger()    {}
func (ChatMessage) isTrigger() {}
func (ChatLog) isTrigger()     {}
func (LeftRoom) isTrigger()    {}

func (t InputLine) String() string   { return fmt.Sprintf("InputLine(%s)", t.Raw) }
func (t LoggedIn) String() string    { return fmt.Sprintf("LoggedIn(%s)", t.Nick) }
func (t NameTaken) String() string   { return fmt.Sprintf("NameTaken(%s)", t.Nick) }
func (t Joined) String() string      { return fmt.Sprintf("Joined(%s)", t.Room) }
func (t RoomList) String() string    { return fmt.Sprintf("RoomList(%d rooms)", len(t.Rooms)) }
func (t ChatMessage) String() string { return fmt.Sprintf("ChatMessage(%s)", t.From) }
func (t ChatLog) String() string     { return fmt.Sprintf("ChatLog(%d messages)", len(t.Messages)) }
func (LeftRoom) String() string      { return "LeftRoom" }
