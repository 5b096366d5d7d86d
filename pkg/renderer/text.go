package renderer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type cellPos struct {
	x, y int
}

// textTracker remembers how wide each text line was, so shorter text drawn at
// the same place can blank out what is left of the old one
type textTracker struct {
	widths map[cellPos]int
}

func newTextTracker() textTracker {
	return textTracker{widths: make(map[cellPos]int)}
}

func (t textTracker) pad(x, y int, text string) string {
	pos := cellPos{x: x, y: y}
	width := runewidth.StringWidth(text)
	prev := t.widths[pos]
	t.widths[pos] = width
	if prev > width {
		return text + strings.Repeat(" ", prev-width)
	}
	return text
}

// Banner centres text on a line of the given width
func Banner(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text
}
