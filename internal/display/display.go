// Package display renders session output lines to the terminal.
// Styling is presentation only; the session core emits plain strings
// and this package classifies them by their prefixes.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	chatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Faint(true)
)

// errorPrefixes mark diagnostic lines emitted by the session core.
var errorPrefixes = []string{
	"Parsing error occurred:",
	"Unexpected message:",
	"Unknown command:",
	"error:",
}

// Renderer writes display lines in order to one writer. It is not
// safe for concurrent use; the session loop is its only caller.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Line renders one session display line.
func (r *Renderer) Line(text string) {
	fmt.Fprintln(r.w, styleFor(text).Render(text))
}

// Error renders a transport or bootstrap error the session core never
// saw.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	r.Line("error: " + err.Error())
}

func styleFor(text string) lipgloss.Style {
	if strings.HasPrefix(text, ">>> ") {
		return chatStyle
	}
	for _, p := range errorPrefixes {
		if strings.HasPrefix(text, p) {
			return errorStyle
		}
	}
	return noticeStyle
}
