package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 60

// Wrap word-wraps text to width columns, or DefaultWidth when width is not
// positive. Surrounding whitespace is trimmed first.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(strings.TrimSpace(text), width)
}
