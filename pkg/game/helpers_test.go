package game

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newTestGame builds a game from the default options after mutate has run
func newTestGame(t *testing.T, mutate func(o *config.Options)) *Game {
	t.Helper()
	opts := config.Default()
	if mutate != nil {
		mutate(&opts)
	}
	g, err := NewGame(opts, newRand(42))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// moveApple puts the apple on p, removing the current one
func moveApple(t *testing.T, b *Board, p Point) {
	t.Helper()
	if old, ok := b.Apple(); ok {
		if err := b.ConsumeApple(old); err != nil {
			t.Fatalf("ConsumeApple: %v", err)
		}
	}
	b.setApple(p)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type fakeScheduler struct {
	waits []time.Duration
	err   error
}

func (s *fakeScheduler) Wait(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

// scriptedInput returns one scripted command per poll, CmdNone meaning no key
type scriptedInput struct {
	script []Command
	polls  int
}

func (s *scriptedInput) Poll() (Command, bool) {
	s.polls++
	if len(s.script) == 0 {
		return CmdNone, false
	}
	cmd := s.script[0]
	s.script = s.script[1:]
	if cmd == CmdNone {
		return CmdNone, false
	}
	return cmd, true
}

type recordingSink struct {
	cells   map[Point]rune
	texts   map[Point]string
	flushes int
	err     error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		cells: make(map[Point]rune),
		texts: make(map[Point]string),
	}
}

func (s *recordingSink) DrawChar(x, y int, ch rune) { s.cells[Point{X: x, Y: y}] = ch }
func (s *recordingSink) EraseChar(x, y int) { delete(s.cells, Point{X: x, Y: y}) }
func (s *recordingSink) DrawText(x, y int, text string) { s.texts[Point{X: x, Y: y}] = text }

func (s *recordingSink) Flush() error {
	s.flushes++
	return s.err
}

var errFlush = errors.New("flush failed")
