package game

import (
	"errors"
	"testing"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Point{X: 40, Y: 20}, 10, Left, 20)
	if s.Len() != 10 || s.Cap() != 20 {
		t.Fatalf("expected len 10 cap 20, got len %d cap %d", s.Len(), s.Cap())
	}
	for i, p := range s.Segments() {
		if want := (Point{X: 40 - i, Y: 20}); p != want {
			t.Errorf("segment %d = %v, want %v", i, p, want)
		}
	}
	if s.Head() != (Point{X: 40, Y: 20}) || s.Tail() != (Point{X: 31, Y: 20}) {
		t.Errorf("unexpected head %v / tail %v", s.Head(), s.Tail())
	}
}

func TestProposeHeadIsPure(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Left, 3)
	before := s.Segments()

	tests := map[Direction]Point{
		Up:    {X: 5, Y: 4},
		Down:  {X: 5, Y: 6},
		Left:  {X: 4, Y: 5},
		Right: {X: 6, Y: 5},
	}
	for d, want := range tests {
		if got := s.ProposeHead(d); got != want {
			t.Errorf("ProposeHead(%s) = %v, want %v", d, got, want)
		}
	}
	for i, p := range s.Segments() {
		if p != before[i] {
			t.Fatalf("ProposeHead moved segment %d", i)
		}
	}
}

func TestCommitMoveShifts(t *testing.T) {
	s := NewSnake(Point{X: 40, Y: 20}, 10, Left, 20)
	before := s.Segments()

	if err := s.CommitMove(Point{X: 41, Y: 20}, false); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}
	after := s.Segments()

	if len(after) != len(before) {
		t.Fatalf("length changed from %d to %d", len(before), len(after))
	}
	if after[0] != (Point{X: 41, Y: 20}) {
		t.Errorf("head = %v, want (41,20)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, want %v", i, after[i], before[i-1])
		}
	}
}

func TestCommitMoveGrows(t *testing.T) {
	s := NewSnake(Point{X: 40, Y: 20}, 10, Left, 20)
	before := s.Segments()

	if err := s.CommitMove(Point{X: 41, Y: 20}, true); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}
	after := s.Segments()

	if len(after) != len(before)+1 {
		t.Fatalf("expected length %d, got %d", len(before)+1, len(after))
	}
	if after[0] != (Point{X: 41, Y: 20}) {
		t.Errorf("head = %v, want (41,20)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, want %v", i, after[i], before[i-1])
		}
	}
	if s.Tail() != before[len(before)-1] {
		t.Errorf("old tail %v should be kept, got %v", before[len(before)-1], s.Tail())
	}
}

func TestCommitMoveSingleSegment(t *testing.T) {
	s := NewSnake(Point{X: 3, Y: 3}, 1, Left, 2)
	if err := s.CommitMove(Point{X: 4, Y: 3}, false); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}
	if s.Len() != 1 || s.Head() != (Point{X: 4, Y: 3}) {
		t.Errorf("unexpected body %v", s.Segments())
	}
	if err := s.CommitMove(Point{X: 5, Y: 3}, true); err != nil {
		t.Fatalf("CommitMove grow: %v", err)
	}
	if got := s.Segments(); len(got) != 2 || got[0] != (Point{X: 5, Y: 3}) || got[1] != (Point{X: 4, Y: 3}) {
		t.Errorf("unexpected body after growth %v", got)
	}
}

func TestCommitMoveAtCapacity(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, 3, Left, 3)
	if err := s.CommitMove(Point{X: 11, Y: 10}, true); !errors.Is(err, ErrSnakeFull) {
		t.Fatalf("expected ErrSnakeFull, got %v", err)
	}
	if s.Len() != 3 || s.Head() != (Point{X: 10, Y: 10}) {
		t.Errorf("a refused growth must not move the snake, got %v", s.Segments())
	}
}

func TestOccupiesAnyOtherThanHead(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, 4, Left, 4)
	if s.OccupiesAnyOtherThanHead(Point{X: 10, Y: 10}) {
		t.Error("head must not count")
	}
	for _, p := range []Point{{X: 9, Y: 10}, {X: 7, Y: 10}} {
		if !s.OccupiesAnyOtherThanHead(p) {
			t.Errorf("%v is on the body", p)
		}
	}
	if s.OccupiesAnyOtherThanHead(Point{X: 11, Y: 10}) {
		t.Error("(11,10) is free")
	}
}
