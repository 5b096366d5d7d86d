package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/termsnake/pkg/config"
)

// TerminalRenderer draws with ANSI escape codes. Writes are collected in a
// buffer and sent to the terminal in one go on Flush.
type TerminalRenderer struct {
	out    io.Writer
	buffer strings.Builder
	texts  textTracker
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		out:   out,
		texts: newTextTracker(),
	}
}

// moveTo positions the cursor. Board coordinates start at 0, the terminal at 1.
func (r *TerminalRenderer) moveTo(x, y int) {
	fmt.Fprintf(&r.buffer, "\033[%d;%dH", y+1, x+1)
}

// DrawChar puts ch at board position (x, y)
func (r *TerminalRenderer) DrawChar(x, y int, ch rune) {
	r.moveTo(x, y)
	r.buffer.WriteRune(ch)
}

// EraseChar blanks board position (x, y)
func (r *TerminalRenderer) EraseChar(x, y int) {
	r.moveTo(x, y)
	r.buffer.WriteRune(config.CharEmpty)
}

// DrawText writes text starting at (x, y)
func (r *TerminalRenderer) DrawText(x, y int, text string) {
	r.moveTo(x, y)
	r.buffer.WriteString(r.texts.pad(x, y, text))
}

// Flush sends the buffered frame to the terminal
func (r *TerminalRenderer) Flush() error {
	defer r.buffer.Reset()
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

// Begin clears the screen and hides the cursor
func (r *TerminalRenderer) Begin() error {
	_, err := io.WriteString(r.out, "\033[H\033[2J\033[3J\033[?25l")
	return err
}

// End shows the cursor again and clears the screen
func (r *TerminalRenderer) End() error {
	_, err := io.WriteString(r.out, "\033[0m\033[H\033[2J\033[?25h")
	return err
}
