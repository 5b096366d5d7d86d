package game

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/trytobebee/termsnake/pkg/config"
)

// CommandSource supplies player commands without blocking
type CommandSource interface {
	Poll() (Command, bool)
}

// Loop drives a game: one move per interval, one input read per interval
type Loop struct {
	Game      *Game
	Sink      Sink
	Input     CommandSource
	Scheduler Scheduler
	Logger    *log.Logger // Optional, discarded when nil
}

// Run plays until the game is won or lost. Any error ends the game as lost.
func (l *Loop) Run(ctx context.Context) (State, error) {
	g := l.Game
	if l.Logger == nil {
		l.Logger = log.New(io.Discard, "", 0)
	}

	drawBoard(l.Sink, g.Board)
	drawApple(l.Sink, g.Board)
	drawSnake(l.Sink, g.Board, g.Snake.Segments())
	drawHUD(l.Sink, g)
	if err := l.Sink.Flush(); err != nil {
		g.Quit()
		return g.State, fmt.Errorf("failed to draw board: %w", err)
	}

	for g.State == Running {
		if err := l.tick(ctx); err != nil {
			g.Quit()
			l.Logger.Printf("tick %d: %v", g.Ticks, err)
			return g.State, err
		}
	}

	l.Logger.Printf("game over: state=%s apples=%d length=%d ticks=%d",
		g.State, g.ApplesEaten, g.Snake.Len(), g.Ticks)
	return g.State, nil
}

func (l *Loop) tick(ctx context.Context) error {
	g := l.Game

	eraseSnake(l.Sink, g.Board, g.Snake.Segments())

	res, err := g.Step()
	if err != nil {
		return err
	}

	switch res.Outcome {
	case Fatal:
		l.Logger.Printf("tick %d: %s collision at (%d,%d)", g.Ticks, res.Cause, res.Target.X, res.Target.Y)
	case Grew:
		l.Logger.Printf("tick %d: apple %d eaten at (%d,%d), interval now %v",
			g.Ticks, g.ApplesEaten, res.Target.X, res.Target.Y, g.Interval)
		drawApple(l.Sink, g.Board)
	}
	if res.Wrapped {
		l.Logger.Printf("tick %d: wrapped to (%d,%d)", g.Ticks, res.Target.X, res.Target.Y)
	}

	drawSnake(l.Sink, g.Board, g.Snake.Segments())
	if res.Outcome == Fatal && g.Board.InBounds(g.CrashPoint) {
		l.Sink.DrawChar(g.CrashPoint.X, g.CrashPoint.Y, config.CharCrash)
	}
	drawHUD(l.Sink, g)
	if err := l.Sink.Flush(); err != nil {
		return fmt.Errorf("failed to draw tick: %w", err)
	}
	if g.State != Running {
		return nil
	}

	if err := l.Scheduler.Wait(ctx, g.Interval); err != nil {
		return err
	}

	cmd, ok := l.Input.Poll()
	if ok && cmd == CmdPause {
		if cmd, ok, err = l.pause(ctx); err != nil {
			return err
		}
	}
	if ok {
		l.apply(cmd)
	}

	g.CommitDirection()
	return nil
}

// pause holds the snake still until a command other than pause arrives
func (l *Loop) pause(ctx context.Context) (Command, bool, error) {
	g := l.Game
	drawPause(l.Sink, g, true)
	if err := l.Sink.Flush(); err != nil {
		return CmdNone, false, fmt.Errorf("failed to draw pause: %w", err)
	}

	for {
		if err := l.Scheduler.Wait(ctx, g.Interval); err != nil {
			return CmdNone, false, err
		}
		cmd, ok := l.Input.Poll()
		if ok && cmd != CmdPause {
			drawPause(l.Sink, g, false)
			return cmd, true, nil
		}
	}
}

func (l *Loop) apply(cmd Command) {
	g := l.Game
	if cmd == CmdQuit {
		l.Logger.Printf("tick %d: quit requested", g.Ticks)
		g.Quit()
		return
	}
	if d, ok := cmd.Direction(); ok {
		if !g.Steer(d) {
			l.Logger.Printf("tick %d: ignored turn %s while heading %s", g.Ticks, d, g.Controller.Current())
		}
	}
}
