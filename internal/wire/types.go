// Package wire implements the chat protocol transport: JSON frames
// over a websocket, decoded into session triggers and encoded from
// session outbound messages. It owns delivery; the session core never
// touches a connection.
package wire

import "encoding/json"

const (
	msgLogin  = "login"
	msgJoin   = "join"
	msgRooms  = "rooms"
	msgLogout = "logout"
	msgLeave  = "leave"
	msgChat   = "msg"

	frameEvent = "event"
	frameError = "error"

	eventLoggedIn  = "logged_in"
	eventNameTaken = "name_taken"
	eventJoined    = "joined"
	eventRoomList  = "room_list"
	eventMessage   = "message"
	eventChatLog   = "chat_log"
	eventLeftRoom  = "left_room"
)

// Envelope is the client -> server frame. Session carries the opaque
// handle once the server has issued one.
type Envelope struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ServerFrame is the server -> client frame.
type ServerFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *Error          `json:"error,omitempty"`
}

// LoginPayload requests a session under a nickname.
type LoginPayload struct {
	Nick string `json:"nick"`
}

// JoinPayload requests entry into a room.
type JoinPayload struct {
	Nick string `json:"nick"`
	Room string `json:"room"`
}

// ChatPayload publishes a chat message to the current room.
type ChatPayload struct {
	Nick string `json:"nick"`
	Body string `json:"body"`
}

// LoggedInPayload confirms a login and carries the session handle.
type LoggedInPayload struct {
	Nick    string `json:"nick"`
	Session string `json:"session"`
}

// NameTakenPayload rejects a login attempt.
type NameTakenPayload struct {
	Nick string `json:"nick"`
}

// JoinedPayload confirms entry into a room.
type JoinedPayload struct {
	Room string `json:"room"`
}

// RoomListPayload lists available rooms in server order.
type RoomListPayload struct {
	Rooms []string `json:"rooms"`
}

// MessagePayload is one chat message from a room participant.
type MessagePayload struct {
	From string `json:"from"`
	Body string `json:"body"`
}

// ChatLogPayload is the room's recent messages, oldest first.
type ChatLogPayload struct {
	Messages []MessagePayload `json:"messages"`
}

// UnmarshalData decodes a frame's raw payload into target.
func UnmarshalData(data json.RawMessage, v any) error {
	return json.Unmarshal(data, v)
}

// Error describes a protocol error sent by the server.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Msg
}
