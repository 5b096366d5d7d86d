package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

// Apple returns the position of the apple, if one is on the board
func (b *Board) Apple() (Point, bool) {
	return b.apple, b.hasApple
}

// PlaceApple puts the apple on a random empty interior cell that is not occupied.
// Random rolls are bounded; after that the apple goes to a random cell among the
// ones still free.
func (b *Board) PlaceApple(rng *rand.Rand, occupied []Point) (Point, error) {
	if b.hasApple {
		return Point{}, fmt.Errorf("%w: at (%d,%d)", ErrAppleExists, b.apple.X, b.apple.Y)
	}

	taken := make(map[Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}

	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		p := Point{
			X: rng.Intn(b.Width-2) + 1,
			Y: rng.Intn(b.Height-2) + 1,
		}
		if b.cells[b.index(p)] == CellEmpty && !taken[p] {
			b.setApple(p)
			return p, nil
		}
	}

	// Crowded board: pick among what is left
	free := make([]Point, 0)
	for y := 1; y < b.Height-1; y++ {
		for x := 1; x < b.Width-1; x++ {
			p := Point{X: x, Y: y}
			if b.cells[b.index(p)] == CellEmpty && !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, fmt.Errorf("%w: no free cell for an apple", ErrPlacementExhausted)
	}
	p := free[rng.Intn(len(free))]
	b.setApple(p)
	return p, nil
}

func (b *Board) setApple(p Point) {
	b.cells[b.index(p)] = CellApple
	b.apple = p
	b.hasApple = true
}

// ConsumeApple clears the apple at p
func (b *Board) ConsumeApple(p Point) error {
	cell, err := b.CellAt(p)
	if err != nil {
		return err
	}
	if cell != CellApple {
		return fmt.Errorf("%w: (%d,%d)", ErrNotApple, p.X, p.Y)
	}
	b.cells[b.index(p)] = CellEmpty
	b.hasApple = false
	return nil
}
