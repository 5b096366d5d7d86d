package input

import (
	"github.com/gdamore/tcell/v2"
)

// TcellHandler reads key events from a tcell screen
type TcellHandler struct {
	queue
	screen tcell.Screen
}

// NewTcellHandler creates a handler on an initialised screen
func NewTcellHandler(screen tcell.Screen, keymap Keymap) *TcellHandler {
	return &TcellHandler{
		queue:  newQueue(keymap),
		screen: screen,
	}
}

// Start begins polling the screen. The reader stops when the screen is finalised.
func (h *TcellHandler) Start() error {
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				h.push(fromTcell(key))
			}
		}
	}()
	return nil
}

// Stop is a no-op: the screen owner finalises it
func (h *TcellHandler) Stop() error {
	return nil
}

func fromTcell(ev *tcell.EventKey) KeyInput {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyInput{Special: SpecialUp}
	case tcell.KeyDown:
		return KeyInput{Special: SpecialDown}
	case tcell.KeyLeft:
		return KeyInput{Special: SpecialLeft}
	case tcell.KeyRight:
		return KeyInput{Special: SpecialRight}
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return KeyInput{Special: SpecialInterrupt}
	case tcell.KeyRune:
		return KeyInput{Char: ev.Rune()}
	}
	return KeyInput{}
}
