package config

import (
	"errors"
	"fmt"
	"time"
)

// Board dimensions and starting layout
const (
	Width       = 80
	Height      = 40
	SnakeLength = 10
	StartX      = 40
	StartY      = 20
)

// Obstacle settings
const (
	ObstacleCount = 5
	ObstacleSize  = 5
)

// Apple settings
const (
	MaxApples = 10 // Apples to eat for a win
)

// Speed ramp
const (
	BaseInterval = 200 * time.Millisecond // Delay between two moves at start
	IntervalStep = 15 * time.Millisecond  // Removed for every apple eaten
	MinInterval  = 50 * time.Millisecond  // Floor of the ramp
)

// MaxPlacementAttempts bounds the random rolls used to place an obstacle or an apple
const MaxPlacementAttempts = 10000

// Characters for rendering
const (
	CharEmpty = ' '
	CharWall  = '#'
	CharHead  = 'O'
	CharBody  = 'X'
	CharApple = '6'
	CharCrash = '*'
)

// HUD placement, relative to the right border of the board
const HUDOffset = 10

// Preset names
const (
	PresetStraight  = "straight"
	PresetObstacles = "obstacles"
	PresetClassic   = "classic"
)

// ErrInvalidOptions is returned by Validate
var ErrInvalidOptions = errors.New("invalid options")

// Options selects which rules of the game are active
type Options struct {
	Width       int
	Height      int
	StartX      int
	StartY      int
	SnakeLength int

	Wraparound bool // Border gaps act as portals to the opposite edge
	Obstacles  bool // Random wall blocks inside the board
	Apples     bool // Apples, growth and the win condition
	Steering   bool // Direction keys are honoured

	MaxApples     int
	ObstacleCount int
	ObstacleSize  int

	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration

	Seed int64 // 0 means seed from the clock
}

// Default returns the full game: portals, obstacles, apples and steering
func Default() Options {
	return Options{
		Width:         Width,
		Height:        Height,
		StartX:        StartX,
		StartY:        StartY,
		SnakeLength:   SnakeLength,
		Wraparound:    true,
		Obstacles:     true,
		Apples:        true,
		Steering:      true,
		MaxApples:     MaxApples,
		ObstacleCount: ObstacleCount,
		ObstacleSize:  ObstacleSize,
		BaseInterval:  BaseInterval,
		IntervalStep:  IntervalStep,
		MinInterval:   MinInterval,
	}
}

// Preset returns the options of a named variant
func Preset(name string) (Options, error) {
	o := Default()
	switch name {
	case PresetClassic, "":
	case PresetStraight:
		o.Steering = false
		o.Obstacles = false
		o.Apples = false
	case PresetObstacles:
		o.Wraparound = false
		o.Apples = false
	default:
		return Options{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidOptions, name)
	}
	return o, nil
}

// Capacity is the largest length the snake can reach
func (o Options) Capacity() int {
	if !o.Apples {
		return o.SnakeLength
	}
	return o.SnakeLength + o.MaxApples
}

// Validate checks that the options describe a playable board
func (o Options) Validate() error {
	if o.Width < 5 || o.Height < 5 {
		return fmt.Errorf("%w: board %dx%d is too small", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.SnakeLength < 1 {
		return fmt.Errorf("%w: snake length %d", ErrInvalidOptions, o.SnakeLength)
	}
	// The snake starts heading right with its body trailing to the left
	tailX := o.StartX - (o.SnakeLength - 1)
	if tailX < 1 || o.StartX > o.Width-2 || o.StartY < 1 || o.StartY > o.Height-2 {
		return fmt.Errorf("%w: snake at (%d,%d) length %d does not fit inside the border",
			ErrInvalidOptions, o.StartX, o.StartY, o.SnakeLength)
	}
	if o.Apples && o.MaxApples < 1 {
		return fmt.Errorf("%w: max apples %d", ErrInvalidOptions, o.MaxApples)
	}
	if o.Obstacles {
		if o.ObstacleCount < 0 || o.ObstacleSize < 1 {
			return fmt.Errorf("%w: %d obstacles of size %d", ErrInvalidOptions, o.ObstacleCount, o.ObstacleSize)
		}
		if o.ObstacleSize > o.Width-3 || o.ObstacleSize > o.Height-3 {
			return fmt.Errorf("%w: obstacle size %d does not fit a %dx%d board",
				ErrInvalidOptions, o.ObstacleSize, o.Width, o.Height)
		}
	}
	if o.BaseInterval <= 0 || o.MinInterval <= 0 || o.IntervalStep < 0 || o.MinInterval > o.BaseInterval {
		return fmt.Errorf("%w: intervals base=%v step=%v min=%v",
			ErrInvalidOptions, o.BaseInterval, o.IntervalStep, o.MinInterval)
	}
	return nil
}
