package session

// Action is an effect emitted by a transition, executed by the caller
// in emission order: either a message to the server or a line for the
// user.
type Action interface {
	isAction()
}

// SendToServer asks the caller to deliver Msg over the session channel.
// Delivery is fire-and-forget; the machine never waits for an ack.
type SendToServer struct {
	Msg ServerMessage
}

// Display asks the caller to show one line to the user.
type Display struct {
	Text string
}

func (SendToServer) isAction() {}
func (Display) isAction()      {}

// ServerMessage is the closed set of messages the client sends to the
// server.
type ServerMessage interface {
	isServerMessage()
}

// Login requests a session under the given nickname.
type Login struct {
	Nick string
}

// JoinRoom requests entry into a room.
type JoinRoom struct {
	Nick string
	Room string
}

// RequestRoomList asks for the available rooms.
type RequestRoomList struct{}

// RequestLogout drops the server-side session.
type RequestLogout struct{}

// RequestLeave exits the current room.
type RequestLeave struct{}

// SendChat publishes a chat message to the current room.
type SendChat struct {
	Nick string
	Body string
}

func (Login) isServerMessage()           {}
func (JoinRoom) isServerMessage()        {}
func (RequestRoomList) isServerMessage() {}
func (RequestLogout) isServerMessage()   {}
func (RequestLeave) isServerMessage()    {}
func (SendChat) isServerMessage()        {}
