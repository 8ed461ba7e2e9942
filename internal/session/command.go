package session

import (
	"strings"
	"unicode"
)

// Sigil marks the first token of a line as a command rather than chat
// text.
const Sigil = `\`

// ParseError reports malformed command syntax. It is always consumed
// at the call site and never escapes a state machine step.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// Input is the result of parsing one raw line: either a Command or
// plain ChatText.
type Input interface {
	isInput()
}

// ChatText is a line with no command sigil, forwarded verbatim as chat.
type ChatText struct {
	Body string
}

// Command is an instruction to the session rather than chat content.
type Command interface {
	Input
	commandName() string
}

// Join asks to enter a room.
type Join struct {
	Room string
}

// ListRooms asks the server for the list of available rooms.
type ListRooms struct{}

// Leave asks to exit the current room.
type Leave struct{}

// Logout drops the session identity.
type Logout struct{}

// Unknown is any sigil-prefixed word the parser does not recognize.
type Unknown struct {
	Name string
}

func (ChatText) isInput()  {}
func (Join) isInput()      {}
func (ListRooms) isInput() {}
func (Leave) isInput()     {}
func (Logout) isInput()    {}
func (Unknown) isInput()   {}

func (Join) commandName() string      { return "Join" }
func (ListRooms) commandName() string { return "ListRooms" }
func (Leave) commandName() string     { return "Leave" }
func (Logout) commandName() string    { return "Logout" }
func (u Unknown) commandName() string { return u.Name }

// ParseLine maps one raw terminal line to chat text or a command.
// The line is trimmed first; a line whose first token starts with the
// sigil is dispatched to ParseCommand, anything else is ChatText with
// the trimmed line as body. An empty line parses to empty chat text.
func ParseLine(raw string) (Input, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ChatText{}, nil
	}

	first, rest, hasRest := splitFirstToken(trimmed)
	if strings.HasPrefix(first, Sigil) {
		return ParseCommand(strings.TrimPrefix(first, Sigil), rest, hasRest)
	}
	return ChatText{Body: trimmed}, nil
}

// ParseCommand interprets a sigil-stripped command name plus its
// optional argument. hasArg reports whether an argument was present at
// all; arg is the remainder of the line verbatim, internal whitespace
// included.
func ParseCommand(name, arg string, hasArg bool) (Command, error) {
	switch name {
	case "rooms":
		if hasArg {
			return nil, &ParseError{Msg: "rooms takes no parameters"}
		}
		return ListRooms{}, nil
	case "join":
		if !hasArg || strings.ContainsFunc(arg, unicode.IsSpace) {
			return nil, &ParseError{Msg: "join takes exactly one parameter"}
		}
		return Join{Room: arg}, nil
	case "leave":
		if hasArg {
			return nil, &ParseError{Msg: "leave takes no parameters"}
		}
		return Leave{}, nil
	case "logout":
		if hasArg {
			return nil, &ParseError{Msg: "logout takes no parameters"}
		}
		return Logout{}, nil
	default:
		return Unknown{Name: name}, nil
	}
}

// splitFirstToken cuts a trimmed, non-empty line into its first
// whitespace-delimited token and the remainder. The remainder keeps
// internal whitespace but not the separator run; hasRest is false when
// the token is the whole line.
func splitFirstToken(trimmed string) (first, rest string, hasRest bool) {
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return trimmed, "", false
	}
	rest = strings.TrimLeftFunc(trimmed[i:], unicode.IsSpace)
	return trimmed[:i], rest, rest != ""
}
