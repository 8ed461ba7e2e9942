package session

import (
	"fmt"
	"strings"
	"unicode"
)

// Step is the transition function. Given the current (state, data)
// pair and one trigger it returns the next pair plus the actions to
// execute, in order. It is total: any (state, trigger) combination not
// explicitly handled degrades to a diagnostic display line with the
// context unchanged, so out-of-order remote events can never crash the
// client.
func Step(ctx Context, trig Trigger) (Context, []Action) {
	switch c := ctx.(type) {
	case Connecting:
		return stepConnecting(c, trig)
	case Connected:
		return stepConnected(c, trig)
	case Chatting:
		return stepChatting(c, trig)
	default:
		return unhandled(ctx, trig)
	}
}

func stepConnecting(c Connecting, trig Trigger) (Context, []Action) {
	switch t := trig.(type) {
	case InputLine:
		nick := firstToken(t.Raw)
		if !validNick(nick) {
			return c, display("Nickname can contain letters only!")
		}
		return c, []Action{SendToServer{Msg: Login{Nick: nick}}}
	case LoggedIn:
		next := Connected{Nick: t.Nick, Handle: t.Handle}
		return next, display("Logged in successfully.")
	case NameTaken:
		return c, display(fmt.Sprintf("%s is taken, choose another one!", t.Nick))
	default:
		return unhandled(c, trig)
	}
}

func stepConnected(c Connected, trig Trigger) (Context, []Action) {
	switch t := trig.(type) {
	case Joined:
		next := Chatting{Nick: c.Nick, Room: t.Room, Handle: c.Handle}
		return next, display("Joined room!")
	case RoomList:
		actions := display("CHAT ROOMS:")
		for _, room := range t.Rooms {
			actions = append(actions, Display{Text: "-> " + room})
		}
		return c, actions
	case InputLine:
		in, err := ParseLine(t.Raw)
		if err != nil {
			return c, display("Parsing error occurred: " + err.Error())
		}
		switch cmd := in.(type) {
		case ChatText:
			return c, display("Only commands are supported in this state.")
		case Join:
			return c, []Action{SendToServer{Msg: JoinRoom{Nick: c.Nick, Room: cmd.Room}}}
		case ListRooms:
			return c, []Action{SendToServer{Msg: RequestRoomList{}}}
		case Logout:
			// Identity is dropped immediately, without waiting for
			// server confirmation.
			return Connecting{}, []Action{SendToServer{Msg: RequestLogout{}}}
		case Unknown:
			return c, display("Unknown command: " + cmd.Name)
		case Leave:
			return c, notSupported(cmd)
		default:
			return unhandled(c, trig)
		}
	default:
		return unhandled(c, trig)
	}
}

func stepChatting(c Chatting, trig Trigger) (Context, []Action) {
	switch t := trig.(type) {
	case ChatMessage:
		return c, display(formatChat(t))
	case ChatLog:
		actions := make([]Action, 0, len(t.Messages))
		for _, msg := range t.Messages {
			actions = append(actions, Display{Text: formatChat(msg)})
		}
		return c, actions
	case LeftRoom:
		next := Connected{Nick: c.Nick, Handle: c.Handle}
		return next, display("Left " + c.Room)
	case InputLine:
		in, err := ParseLine(t.Raw)
		if err != nil {
			return c, display("Parsing error occurred: " + err.Error())
		}
		switch cmd := in.(type) {
		case ChatText:
			// Forwarded verbatim, an empty body included.
			return c, []Action{SendToServer{Msg: SendChat{Nick: c.Nick, Body: cmd.Body}}}
		case Leave:
			return c, []Action{SendToServer{Msg: RequestLeave{}}}
		case Unknown:
			return c, display("Unknown command: " + cmd.Name)
		case Command:
			return c, notSupported(cmd)
		default:
			return unhandled(c, trig)
		}
	default:
		return unhandled(c, trig)
	}
}

func unhandled(ctx Context, trig Trigger) (Context, []Action) {
	return ctx, display(fmt.Sprintf("Unexpected message: %s", trig))
}

func display(text string) []Action {
	return []Action{Display{Text: text}}
}

func notSupported(cmd Command) []Action {
	return display(fmt.Sprintf("Command %s is not supported in this state.", cmd.commandName()))
}

func formatChat(msg ChatMessage) string {
	return fmt.Sprintf(">>> %s: %s", msg.From, msg.Body)
}

func firstToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// validNick requires a non-empty, letters-only nickname.
func validNick(nick string) bool {
	if nick == "" {
		return false
	}
	for _, r := range nick {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
