package wire

import (
	"fmt"

	"github.com/vovakirdan/wirechat-client/internal/session"
)

// DecodeTrigger maps one server frame to the session trigger it
// represents. Error frames and unknown events come back as a
// *WireError; the caller decides how to surface them.
func DecodeTrigger(frame ServerFrame) (session.Trigger, error) {
	if frame.Type == frameError && frame.Error != nil {
		return nil, FromProtocolError(frame.Error)
	}

	switch frame.Event {
	case eventLoggedIn:
		var p LoggedInPayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		return session.LoggedIn{Nick: p.Nick, Handle: session.ServerHandle(p.Session)}, nil
	case eventNameTaken:
		var p NameTakenPayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		return session.NameTaken{Nick: p.Nick}, nil
	case eventJoined:
		var p JoinedPayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		return session.Joined{Room: p.Room}, nil
	case eventRoomList:
		var p RoomListPayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		return session.RoomList{Rooms: p.Rooms}, nil
	case eventMessage:
		var p MessagePayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		return session.ChatMessage{From: p.From, Body: p.Body}, nil
	case eventChatLog:
		var p ChatLogPayload
		if err := unmarshal(frame, &p); err != nil {
			return nil, err
		}
		messages := make([]session.ChatMessage, 0, len(p.Messages))
		for _, m := range p.Messages {
			messages = append(messages, session.ChatMessage{From: m.From, Body: m.Body})
		}
		return session.ChatLog{Messages: messages}, nil
	case eventLeftRoom:
		return session.LeftRoom{}, nil
	default:
		return nil, NewError(ErrorProtocol, fmt.Sprintf("unknown event %q", frame.Event))
	}
}

// EncodeMessage wraps a session outbound message into the envelope the
// server expects, addressed with the session handle (empty before
// login).
func EncodeMessage(msg session.ServerMessage, handle session.ServerHandle) (Envelope, error) {
	env := Envelope{Session: string(handle)}
	switch m := msg.(type) {
	case session.Login:
		env.Type = msgLogin
		env.Data = LoginPayload{Nick: m.Nick}
	case session.JoinRoom:
		env.Type = msgJoin
		env.Data = JoinPayload{Nick: m.Nick, Room: m.Room}
	case session.RequestRoomList:
		env.Type = msgRooms
	case session.RequestLogout:
		env.Type = msgLogout
	case session.RequestLeave:
		env.Type = msgLeave
	case session.SendChat:
		env.Type = msgChat
		env.Data = ChatPayload{Nick: m.Nick, Body: m.Body}
	default:
		return Envelope{}, NewError(ErrorSerialization, fmt.Sprintf("unsupported message %T", msg))
	}
	return env, nil
}

func unmarshal(frame ServerFrame, v any) error {
	if err := UnmarshalData(frame.Data, v); err != nil {
		return WrapError(ErrorSerialization, fmt.Sprintf("decode %s event", frame.Event), err)
	}
	return nil
}
