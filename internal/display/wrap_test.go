package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"short text untouched": {
			text:  "A red potion.",
			width: 40,
			exp:   "A red potion.",
		},
		"breaks on word boundary": {
			text:  "Restores a little health",
			width: 10,
			exp:   "Restores a\nlittle\nhealth",
		},
		"trims surrounding whitespace": {
			text:  "  padded  ",
			width: 40,
			exp:   "padded",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", Wrap(tt.text, tt.width), tt.exp)
		})
	}
}

func TestWrap_DefaultWidth(t *testing.T) {
	text := strings.Repeat("word ", 30)

	for _, line := range strings.Split(Wrap(text, 0), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line %q exceeds default width %d", line, DefaultWidth)
		}
	}
}
