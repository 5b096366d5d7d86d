package input

import (
	"github.com/eiannone/keyboard"
)

// KeyboardHandler reads keys from the terminal with eiannone/keyboard
type KeyboardHandler struct {
	queue
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler(keymap Keymap) *KeyboardHandler {
	return &KeyboardHandler{
		queue: newQueue(keymap),
	}
}

// Start opens the keyboard and begins listening for input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.push(fromKeyboard(char, key))
		}
	}()

	return nil
}

// Stop closes the keyboard and restores the terminal
func (h *KeyboardHandler) Stop() error {
	return keyboard.Close()
}

func fromKeyboard(char rune, key keyboard.Key) KeyInput {
	switch key {
	case keyboard.KeyArrowUp:
		return KeyInput{Special: SpecialUp}
	case keyboard.KeyArrowDown:
		return KeyInput{Special: SpecialDown}
	case keyboard.KeyArrowLeft:
		return KeyInput{Special: SpecialLeft}
	case keyboard.KeyArrowRight:
		return KeyInput{Special: SpecialRight}
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return KeyInput{Special: SpecialInterrupt}
	}
	return KeyInput{Char: char}
}
