package input

import (
	"fmt"
	"unicode"

	"github.com/trytobebee/termsnake/pkg/game"
)

// Special is a non-printable key
type Special int

const (
	SpecialNone Special = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialInterrupt // Ctrl-C or Escape
)

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char    rune
	Special Special
}

// Keymap binds characters to commands
type Keymap struct {
	Name  string
	Up    rune
	Down  rune
	Left  rune
	Right rune
	Pause rune
	Quit  rune
}

// Key maps
var (
	// Azerty is the original layout: z q s d, pause p, stop a
	Azerty = Keymap{Name: "azerty", Up: 'z', Down: 's', Left: 'q', Right: 'd', Pause: 'p', Quit: 'a'}
	// Qwerty puts the same keys under w a s d and moves stop to x
	Qwerty = Keymap{Name: "qwerty", Up: 'w', Down: 's', Left: 'a', Right: 'd', Pause: 'p', Quit: 'x'}
)

// LookupKeymap returns the key map with the given name
func LookupKeymap(name string) (Keymap, error) {
	switch name {
	case Azerty.Name, "":
		return Azerty, nil
	case Qwerty.Name:
		return Qwerty, nil
	}
	return Keymap{}, fmt.Errorf("unknown key map %q", name)
}

// Translate turns a key into a game command. Unknown keys report false.
func (m Keymap) Translate(in KeyInput) (game.Command, bool) {
	switch in.Special {
	case SpecialUp:
		return game.CmdUp, true
	case SpecialDown:
		return game.CmdDown, true
	case SpecialLeft:
		return game.CmdLeft, true
	case SpecialRight:
		return game.CmdRight, true
	case SpecialInterrupt:
		return game.CmdQuit, true
	}

	switch unicode.ToLower(in.Char) {
	case m.Up:
		return game.CmdUp, true
	case m.Down:
		return game.CmdDown, true
	case m.Left:
		return game.CmdLeft, true
	case m.Right:
		return game.CmdRight, true
	case m.Pause:
		return game.CmdPause, true
	case m.Quit:
		return game.CmdQuit, true
	}
	return game.CmdNone, false
}

// queue buffers key events from a reader goroutine and hands them to the game
// loop one at a time without blocking
type queue struct {
	keymap Keymap
	events chan KeyInput
}

func newQueue(keymap Keymap) queue {
	return queue{
		keymap: keymap,
		events: make(chan KeyInput, 16),
	}
}

// push drops the key when the loop is far behind
func (q queue) push(in KeyInput) {
	select {
	case q.events <- in:
	default:
	}
}

// Poll returns the next recognised command, skipping unknown keys
func (q queue) Poll() (game.Command, bool) {
	for {
		select {
		case in := <-q.events:
			if cmd, ok := q.keymap.Translate(in); ok {
				return cmd, true
			}
		default:
			return game.CmdNone, false
		}
	}
}
