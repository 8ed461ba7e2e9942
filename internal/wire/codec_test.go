package wire

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/session"
)

func frame(t *testing.T, event string, payload any) ServerFrame {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return ServerFrame{Type: frameEvent, Event: event, Data: raw}
}

func TestDecodeTrigger(t *testing.T) {
	tests := []struct {
		name  string
		frame ServerFrame
		want  session.Trigger
	}{
		{
			name:  "logged in",
			frame: frame(t, eventLoggedIn, LoggedInPayload{Nick: "alice", Session: "s-1"}),
			want:  session.LoggedIn{Nick: "alice", Handle: "s-1"},
		},
		{
			name:  "name taken",
			frame: frame(t, eventNameTaken, NameTakenPayload{Nick: "alice"}),
			want:  session.NameTaken{Nick: "alice"},
		},
		{
			name:  "joined",
			frame: frame(t, eventJoined, JoinedPayload{Room: "lobby"}),
			want:  session.Joined{Room: "lobby"},
		},
		{
			name:  "room list",
			frame: frame(t, eventRoomList, RoomListPayload{Rooms: []string{"lobby", "games"}}),
			want:  session.RoomList{Rooms: []string{"lobby", "games"}},
		},
		{
			name:  "message",
			frame: frame(t, eventMessage, MessagePayload{From: "bob", Body: "hi"}),
			want:  session.ChatMessage{From: "bob", Body: "hi"},
		},
		{
			name: "chat log",
			frame: frame(t, eventChatLog, ChatLogPayload{Messages: []MessagePayload{
				{From: "bob", Body: "hi"},
				{From: "carol", Body: "hey"},
			}}),
			want: session.ChatLog{Messages: []session.ChatMessage{
				{From: "bob", Body: "hi"},
				{From: "carol", Body: "hey"},
			}},
		},
		{
			name:  "left room",
			frame: ServerFrame{Type: frameEvent, Event: eventLeftRoom},
			want:  session.LeftRoom{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTrigger(tt.frame)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTriggerErrorFrame(t *testing.T) {
	_, err := DecodeTrigger(ServerFrame{
		Type:  frameError,
		Error: &Error{Code: "room_not_found", Msg: "no such room"},
	})
	var we *WireError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, ErrorProtocol, we.Code)
	assert.Contains(t, we.Message, "room_not_found")
}

func TestDecodeTriggerUnknownEvent(t *testing.T) {
	_, err := DecodeTrigger(ServerFrame{Type: frameEvent, Event: "mystery"})
	assert.ErrorIs(t, err, NewError(ErrorProtocol, ""))
}

func TestDecodeTriggerBadPayload(t *testing.T) {
	_, err := DecodeTrigger(ServerFrame{
		Type:  frameEvent,
		Event: eventLoggedIn,
		Data:  json.RawMessage(`"not an object"`),
	})
	assert.ErrorIs(t, err, NewError(ErrorSerialization, ""))
}

func TestEncodeMessage(t *testing.T) {
	tests := []struct {
		name   string
		msg    session.ServerMessage
		handle session.ServerHandle
		want   Envelope
	}{
		{
			name: "login without handle",
			msg:  session.Login{Nick: "alice"},
			want: Envelope{Type: msgLogin, Data: LoginPayload{Nick: "alice"}},
		},
		{
			name:   "join",
			msg:    session.JoinRoom{Nick: "alice", Room: "lobby"},
			handle: "s-1",
			want:   Envelope{Type: msgJoin, Session: "s-1", Data: JoinPayload{Nick: "alice", Room: "lobby"}},
		},
		{
			name:   "room list request",
			msg:    session.RequestRoomList{},
			handle: "s-1",
			want:   Envelope{Type: msgRooms, Session: "s-1"},
		},
		{
			name:   "logout",
			msg:    session.RequestLogout{},
			handle: "s-1",
			want:   Envelope{Type: msgLogout, Session: "s-1"},
		},
		{
			name:   "leave",
			msg:    session.RequestLeave{},
			handle: "s-1",
			want:   Envelope{Type: msgLeave, Session: "s-1"},
		},
		{
			name:   "chat",
			msg:    session.SendChat{Nick: "alice", Body: "hello there"},
			handle: "s-1",
			want:   Envelope{Type: msgChat, Session: "s-1", Data: ChatPayload{Nick: "alice", Body: "hello there"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeMessage(tt.msg, tt.handle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSendNotConnected(t *testing.T) {
	c := NewClient(config.Config{URL: "ws://localhost:8080/ws"}, nil)
	err := c.Send(context.Background(), session.Login{Nick: "alice"}, "")
	assert.ErrorIs(t, err, NewError(ErrorNotConnected, ""))
}
