// Package terminal scopes the terminal mode used by the game. A Session puts
// stdin in raw mode (no echo, no line buffering) and puts back the exact
// previous state when closed.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not a tty
var ErrNotTerminal = errors.New("not a terminal")

// Session holds the terminal state saved when the game started
type Session struct {
	fd    int
	saved *term.State

	mu     sync.Mutex
	closed bool
}

// Open checks that in is a terminal, saves its state and switches it to raw mode
func Open(in *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return &Session{fd: fd, saved: saved}, nil
}

// Close restores the saved state. Calling it again does nothing.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := term.Restore(s.fd, s.saved); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Size returns the width and height of the terminal on out
func Size(out *os.File) (int, int, error) {
	return term.GetSize(int(out.Fd()))
}

// CheckSize fails when out is smaller than the requested area
func CheckSize(out *os.File, width, height int) error {
	w, h, err := Size(out)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}
	if w < width || h < height {
		return fmt.Errorf("terminal is %dx%d, the game needs %dx%d", w, h, width, height)
	}
	return nil
}
