package game

import "fmt"

// Snake is the ordered body of the player, head first
type Snake struct {
	body     []Point
	capacity int
}

// NewSnake lays out a straight snake of the given length with its head at head
// and the rest of the body trailing towards tail.
func NewSnake(head Point, length int, tail Direction, capacity int) *Snake {
	if capacity < length {
		capacity = length
	}
	s := &Snake{
		body:     make([]Point, length, capacity),
		capacity: capacity,
	}
	step := tail.Delta()
	for i := range s.body {
		s.body[i] = Point{X: head.X + step.X*i, Y: head.Y + step.Y*i}
	}
	return s
}

// Head returns the first segment
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Cap returns the maximum length
func (s *Snake) Cap() int {
	return s.capacity
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// ProposeHead returns where the head would be after one step in d
func (s *Snake) ProposeHead(d Direction) Point {
	return s.body[0].Add(d.Delta())
}

// CommitMove moves every segment into the place of the one before it and puts
// the head on newHead. When grew is set the old tail stays, so the snake is one
// segment longer.
func (s *Snake) CommitMove(newHead Point, grew bool) error {
	if grew {
		if len(s.body) >= s.capacity {
			return fmt.Errorf("%w: length %d", ErrSnakeFull, len(s.body))
		}
		s.body = append(s.body, s.body[len(s.body)-1])
	}
	// When growing, the last slot already holds the old tail and keeps it
	last := len(s.body) - 1
	if grew {
		last--
	}
	for i := last; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = newHead
	return nil
}

// OccupiesAnyOtherThanHead reports whether p is on the body behind the head.
// It is meant to be called before the move is committed, so the tail that is
// about to move still counts.
func (s *Snake) OccupiesAnyOtherThanHead(p Point) bool {
	for _, seg := range s.body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}
