package game

import (
	"errors"
	"time"
)

// Errors returned by the board and the snake
var (
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrNotApple           = errors.New("cell holds no apple")
	ErrAppleExists        = errors.New("an apple is already on the board")
	ErrPlacementExhausted = errors.New("no valid placement found")
	ErrSnakeFull          = errors.New("snake is at capacity")
)

// Point represents a coordinate on the game board
type Point struct {
	X int
	Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four headings of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step of the direction
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Cell is the terrain stored in one board square
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellApple
)

// State is the lifecycle of a game
type State int

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Outcome classifies a proposed move
type Outcome int

const (
	Moved Outcome = iota
	Grew
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Cause tells what a fatal move ran into
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseOutOfBounds
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseOutOfBounds:
		return "out of bounds"
	}
	return "unknown"
}

// Resolution is the verdict of the collision resolver for one tick
type Resolution struct {
	Outcome Outcome
	Target  Point // Final head position, after any portal jump
	Wrapped bool  // The head went through a border gap
	Cause   Cause // Set when Outcome is Fatal
}

// Command is one action read from the input source
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdQuit
)

// Direction returns the heading carried by a movement command
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return Up, true
	case CmdDown:
		return Down, true
	case CmdLeft:
		return Left, true
	case CmdRight:
		return Right, true
	}
	return 0, false
}

// Stats is a snapshot of the counters shown in the HUD and logs
type Stats struct {
	State       State
	ApplesEaten int
	MaxApples   int
	Length      int
	Ticks       int
	Interval    time.Duration
}
