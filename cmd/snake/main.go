package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
	"github.com/trytobebee/termsnake/pkg/renderer"
	"github.com/trytobebee/termsnake/pkg/terminal"
)

type flags struct {
	preset  string
	seed    int64
	backend string
	keys    string
	logPath string
	start   string
	apples  int
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.preset, "preset", config.PresetClassic, "game variant: straight, obstacles or classic")
	flag.Int64Var(&f.seed, "seed", 0, "random seed for obstacles and apples (0 uses the clock)")
	flag.StringVar(&f.backend, "backend", "ansi", "terminal backend: ansi or tcell")
	flag.StringVar(&f.keys, "keys", "azerty", "key map: azerty (z q s d, a to stop) or qwerty (w a s d, x to stop)")
	flag.StringVar(&f.logPath, "log", "", "write the game log to this file")
	flag.StringVar(&f.start, "start", "", "head start position as x,y; only the centre row and column wrap through the border gaps")
	flag.IntVar(&f.apples, "apples", 0, "apples needed to win (0 keeps the preset)")
	flag.Parse()
	return f
}

func buildOptions(f flags) (config.Options, error) {
	opts, err := config.Preset(f.preset)
	if err != nil {
		return opts, err
	}
	if f.start != "" {
		if _, err := fmt.Sscanf(f.start, "%d,%d", &opts.StartX, &opts.StartY); err != nil {
			return opts, fmt.Errorf("%w: start %q: %v", config.ErrInvalidOptions, f.start, err)
		}
	}
	if f.apples > 0 {
		opts.MaxApples = f.apples
	}
	opts.Seed = f.seed
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, opts.Validate()
}

func newLogger(path, runID string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.New(f, fmt.Sprintf("[%s] ", runID[:8]), log.LstdFlags|log.Lmicroseconds)
	return logger, func() { f.Close() }, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	opts, err := buildOptions(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	keymap, err := input.LookupKeymap(f.keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	runID := uuid.NewString()
	logger, closeLog, err := newLogger(f.logPath, runID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer closeLog()
	logger.Printf("run %s: preset=%s seed=%d backend=%s keys=%s", runID, f.preset, opts.Seed, f.backend, keymap.Name)

	g, err := game.NewGame(opts, rand.New(rand.NewSource(uint64(opts.Seed))))
	if err != nil {
		logger.Printf("setup failed: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var state game.State
	switch f.backend {
	case "ansi":
		state, err = playANSI(ctx, g, keymap, logger)
	case "tcell":
		state, err = playTcell(ctx, g, keymap, logger)
	default:
		err = fmt.Errorf("unknown backend %q", f.backend)
	}

	return finish(os.Stdout, os.Stderr, logger, state, err, opts.Width)
}

// finish prints the outcome and returns the exit code. A cancelled game is
// reported like a loss; any other error is fatal.
func finish(stdout, stderr io.Writer, logger *log.Logger, state game.State, err error, width int) int {
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("game aborted: %v", err)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if state == game.Won {
		fmt.Fprintln(stdout, renderer.Banner("YOU WIN !", width))
	} else {
		fmt.Fprintln(stdout, renderer.Banner("GAME OVER !", width))
	}
	return 0
}

// closeInto runs a deferred close and keeps its error, unless an earlier
// failure other than a cancellation is already being returned
func closeInto(err *error, closeFn func() error) {
	cerr := closeFn()
	if cerr == nil {
		return
	}
	if *err == nil || errors.Is(*err, context.Canceled) {
		*err = cerr
	}
}

// hudWidth is the room needed right of the board for the counters
const hudWidth = 24

func playANSI(ctx context.Context, g *game.Game, keymap input.Keymap, logger *log.Logger) (state game.State, err error) {
	session, err := terminal.Open(os.Stdin)
	if err != nil {
		return game.Lost, err
	}
	defer closeInto(&err, session.Close)

	opts := g.Options()
	if err := terminal.CheckSize(os.Stdout, opts.Width+config.HUDOffset+hudWidth, opts.Height); err != nil {
		logger.Printf("warning: %v", err)
	}

	handler := input.NewKeyboardHandler(keymap)
	if err := handler.Start(); err != nil {
		return game.Lost, fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer closeInto(&err, func() error {
		if err := handler.Stop(); err != nil {
			return fmt.Errorf("failed to close keyboard: %w", err)
		}
		return nil
	})

	render := renderer.NewTerminalRenderer(os.Stdout)
	if err := render.Begin(); err != nil {
		return game.Lost, err
	}
	defer closeInto(&err, func() error {
		if err := render.End(); err != nil {
			return fmt.Errorf("failed to reset screen: %w", err)
		}
		return nil
	})

	loop := &game.Loop{
		Game:      g,
		Sink:      render,
		Input:     handler,
		Scheduler: game.TimerScheduler{},
		Logger:    logger,
	}
	return loop.Run(ctx)
}

func playTcell(ctx context.Context, g *game.Game, keymap input.Keymap, logger *log.Logger) (state game.State, err error) {
	session, err := terminal.Open(os.Stdin)
	if err != nil {
		return game.Lost, err
	}
	defer closeInto(&err, session.Close)

	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Lost, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Lost, fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	opts := g.Options()
	if w, h := screen.Size(); w < opts.Width+config.HUDOffset+hudWidth || h < opts.Height {
		logger.Printf("warning: terminal is %dx%d, the game needs %dx%d",
			w, h, opts.Width+config.HUDOffset+hudWidth, opts.Height)
	}

	handler := input.NewTcellHandler(screen, keymap)
	if err := handler.Start(); err != nil {
		return game.Lost, err
	}
	defer closeInto(&err, handler.Stop)

	loop := &game.Loop{
		Game:      g,
		Sink:      renderer.NewTcellRenderer(screen),
		Input:     handler,
		Scheduler: game.TimerScheduler{},
		Logger:    logger,
	}
	return loop.Run(ctx)
}
