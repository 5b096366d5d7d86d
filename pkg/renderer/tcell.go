package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/trytobebee/termsnake/pkg/config"
)

// TcellRenderer draws on a tcell screen
type TcellRenderer struct {
	screen tcell.Screen
	texts  textTracker
}

// NewTcellRenderer wraps an initialised screen
func NewTcellRenderer(screen tcell.Screen) *TcellRenderer {
	return &TcellRenderer{
		screen: screen,
		texts:  newTextTracker(),
	}
}

func styleFor(ch rune) tcell.Style {
	switch ch {
	case config.CharWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case config.CharHead:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case config.CharBody:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case config.CharApple:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault
}

// DrawChar puts ch at board position (x, y)
func (r *TcellRenderer) DrawChar(x, y int, ch rune) {
	r.screen.SetContent(x, y, ch, nil, styleFor(ch))
}

// EraseChar blanks board position (x, y)
func (r *TcellRenderer) EraseChar(x, y int) {
	r.screen.SetContent(x, y, config.CharEmpty, nil, tcell.StyleDefault)
}

// DrawText writes text starting at (x, y)
func (r *TcellRenderer) DrawText(x, y int, text string) {
	col := x
	for _, ch := range r.texts.pad(x, y, text) {
		r.screen.SetContent(col, y, ch, nil, tcell.StyleDefault)
		col += runewidth.RuneWidth(ch)
	}
}

// Flush shows the pending changes
func (r *TcellRenderer) Flush() error {
	r.screen.Show()
	return nil
}
