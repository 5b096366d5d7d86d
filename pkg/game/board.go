package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

// Board is the fixed terrain of a game: border ring, obstacle blocks and the apple.
// Coordinates run from 0 to Width-1 and 0 to Height-1; the border ring sits on
// the outermost row and column on each side.
type Board struct {
	Width   int
	Height  int
	portals bool
	cells   []Cell

	apple    Point
	hasApple bool
}

// NewBoard creates a board with a wall border. When portals is set, the middle
// cell of each edge is left open.
func NewBoard(width, height int, portals bool) *Board {
	b := &Board{
		Width:   width,
		Height:  height,
		portals: portals,
		cells:   make([]Cell, width*height),
	}

	for x := 0; x < width; x++ {
		b.cells[b.index(Point{X: x, Y: 0})] = CellWall
		b.cells[b.index(Point{X: x, Y: height - 1})] = CellWall
	}
	for y := 0; y < height; y++ {
		b.cells[b.index(Point{X: 0, Y: y})] = CellWall
		b.cells[b.index(Point{X: width - 1, Y: y})] = CellWall
	}

	if portals {
		for _, gap := range b.Gaps() {
			b.cells[b.index(gap)] = CellEmpty
		}
	}
	return b
}

func (b *Board) index(p Point) int {
	return p.Y*b.Width + p.X
}

// InBounds reports whether p lies on the grid
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// CellAt returns the terrain at p
func (b *Board) CellAt(p Point) (Cell, error) {
	if !b.InBounds(p) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, p.X, p.Y, b.Width, b.Height)
	}
	return b.cells[b.index(p)], nil
}

// Gaps returns the four border midpoints, top, bottom, left, right
func (b *Board) Gaps() []Point {
	return []Point{
		{X: b.Width / 2, Y: 0},
		{X: b.Width / 2, Y: b.Height - 1},
		{X: 0, Y: b.Height / 2},
		{X: b.Width - 1, Y: b.Height / 2},
	}
}

// IsPortal reports whether p is an open gap in the border
func (b *Board) IsPortal(p Point) bool {
	if !b.portals || !b.InBounds(p) || b.cells[b.index(p)] != CellEmpty {
		return false
	}
	onVertical := p.X == 0 || p.X == b.Width-1
	onHorizontal := p.Y == 0 || p.Y == b.Height-1
	switch {
	case onHorizontal && !onVertical:
		return p.X == b.Width/2
	case onVertical && !onHorizontal:
		return p.Y == b.Height/2
	}
	return false
}

// PortalExit returns the cell where a head entering gap p reappears: just inside
// the opposite edge, keeping the coordinate along the edge.
func (b *Board) PortalExit(p Point) Point {
	switch {
	case p.X == b.Width-1:
		return Point{X: 1, Y: p.Y}
	case p.X == 0:
		return Point{X: b.Width - 2, Y: p.Y}
	case p.Y == b.Height-1:
		return Point{X: p.X, Y: 1}
	default:
		return Point{X: p.X, Y: b.Height - 2}
	}
}

// PlaceObstacles drops count square wall blocks of the given size at random
// interior positions. A block never touches the border, another block or any
// of the occupied cells.
func (b *Board) PlaceObstacles(rng *rand.Rand, count, size int, occupied []Point) error {
	taken := make(map[Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}

	spanX := b.Width - 1 - size
	spanY := b.Height - 1 - size
	if spanX < 1 || spanY < 1 {
		return fmt.Errorf("%w: %dx%d block does not fit", ErrPlacementExhausted, size, size)
	}

	for k := 0; k < count; k++ {
		placed := false
		for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
			corner := Point{X: rng.Intn(spanX) + 1, Y: rng.Intn(spanY) + 1}
			if !b.blockFree(corner, size, taken) {
				continue
			}
			for dy := 0; dy < size; dy++ {
				for dx := 0; dx < size; dx++ {
					b.cells[b.index(Point{X: corner.X + dx, Y: corner.Y + dy})] = CellWall
				}
			}
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: obstacle %d of %d after %d attempts",
				ErrPlacementExhausted, k+1, count, config.MaxPlacementAttempts)
		}
	}
	return nil
}

func (b *Board) blockFree(corner Point, size int, taken map[Point]bool) bool {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			p := Point{X: corner.X + dx, Y: corner.Y + dy}
			if !b.InBounds(p) || b.cells[b.index(p)] != CellEmpty || taken[p] {
				return false
			}
		}
	}
	return true
}

// Walls returns every wall cell, row by row
func (b *Board) Walls() []Point {
	walls := make([]Point, 0, 2*(b.Width+b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.cells[y*b.Width+x] == CellWall {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}
