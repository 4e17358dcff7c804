// Package text formats model responses for display in a terminal
package text

import (
	"os"
	"regexp"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
)

var (
	reThinking = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Width returns the width of the terminal attached to stdout, or a default
// width when stdout is not a terminal
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// Render formats a response for display at the given width. With markdown
// set the text is rendered through glamour, otherwise it is word-wrapped.
func Render(s string, width int, markdown bool) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	if !markdown {
		return wordwrap.String(strings.TrimSpace(s), width), nil
	}

	// Detect the terminal background for the glamour style
	style := "dark"
	if !termenv.HasDarkBackground() {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(s)
}

// StripThinking removes <think>...</think> blocks which reasoning models
// emit before their answer
func StripThinking(s string) string {
	return strings.TrimSpace(reThinking.ReplaceAllString(s, ""))
}
