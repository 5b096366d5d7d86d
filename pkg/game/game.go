package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

// Game represents the whole state of one run. It is owned by the loop and only
// changed from inside a tick.
type Game struct {
	Board      *Board
	Snake      *Snake
	Controller *Controller

	State       State
	ApplesEaten int
	Interval    time.Duration // Delay before the next move
	Ticks       int
	CrashPoint  Point // Target of the fatal move, valid once State is Lost
	LastResult  Resolution

	opts config.Options
	rng  *rand.Rand
}

// NewGame builds the board, snake and first apple described by opts
func NewGame(opts config.Options, rng *rand.Rand) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Board:      NewBoard(opts.Width, opts.Height, opts.Wraparound),
		Snake:      NewSnake(Point{X: opts.StartX, Y: opts.StartY}, opts.SnakeLength, Left, opts.Capacity()),
		Controller: NewController(Right, opts.Steering),
		State:      Running,
		Interval:   opts.BaseInterval,
		opts:       opts,
		rng:        rng,
	}

	if opts.Obstacles {
		if err := g.Board.PlaceObstacles(rng, opts.ObstacleCount, opts.ObstacleSize, g.Snake.Segments()); err != nil {
			return nil, fmt.Errorf("failed to generate board: %w", err)
		}
	}
	if opts.Apples {
		if _, err := g.Board.PlaceApple(rng, g.Snake.Segments()); err != nil {
			return nil, fmt.Errorf("failed to place first apple: %w", err)
		}
	}
	return g, nil
}

// Options returns the rules the game was created with
func (g *Game) Options() config.Options {
	return g.opts
}

// Step advances the snake by one cell in the pending direction
func (g *Game) Step() (Resolution, error) {
	if g.State != Running {
		return Resolution{}, fmt.Errorf("step on a finished game (%s)", g.State)
	}
	g.Ticks++

	res := Resolve(g.Board, g.Snake, g.Controller.Pending(), g.opts.Wraparound)
	g.LastResult = res

	switch res.Outcome {
	case Fatal:
		g.State = Lost
		g.CrashPoint = res.Target
		return res, nil

	case Grew:
		if err := g.Snake.CommitMove(res.Target, true); err != nil {
			g.State = Lost
			return res, err
		}
		if err := g.Board.ConsumeApple(res.Target); err != nil {
			g.State = Lost
			return res, err
		}
		g.ApplesEaten++
		g.speedUp()

		if g.ApplesEaten >= g.opts.MaxApples {
			g.State = Won
			return res, nil
		}
		if _, err := g.Board.PlaceApple(g.rng, g.Snake.Segments()); err != nil {
			g.State = Lost
			return res, fmt.Errorf("failed to place apple: %w", err)
		}
		return res, nil

	default:
		if err := g.Snake.CommitMove(res.Target, false); err != nil {
			g.State = Lost
			return res, err
		}
		return res, nil
	}
}

func (g *Game) speedUp() {
	g.Interval -= g.opts.IntervalStep
	if g.Interval < g.opts.MinInterval {
		g.Interval = g.opts.MinInterval
	}
}

// Steer offers a new heading; reversals are refused
func (g *Game) Steer(d Direction) bool {
	return g.Controller.Offer(d)
}

// CommitDirection ends the tick by making the pending heading current
func (g *Game) CommitDirection() {
	g.Controller.Commit()
}

// Quit ends a running game as lost
func (g *Game) Quit() {
	if g.State == Running {
		g.State = Lost
	}
}

// Stats returns the counters for the HUD
func (g *Game) Stats() Stats {
	return Stats{
		State:       g.State,
		ApplesEaten: g.ApplesEaten,
		MaxApples:   g.opts.MaxApples,
		Length:      g.Snake.Len(),
		Ticks:       g.Ticks,
		Interval:    g.Interval,
	}
}
