package game

// Resolve classifies the move of snake one step in dir without changing anything.
// Checks run in a fixed order: portal jump, out of bounds, wall, own body, apple.
// A portal is taken before any other check, so an open gap is never fatal; the
// cell it leads to is then checked like any other target.
func Resolve(b *Board, s *Snake, dir Direction, wraparound bool) Resolution {
	res := Resolution{Target: s.ProposeHead(dir)}

	if wraparound && b.IsPortal(res.Target) {
		res.Target = b.PortalExit(res.Target)
		res.Wrapped = true
	}

	cell, err := b.CellAt(res.Target)
	switch {
	case err != nil:
		res.Outcome, res.Cause = Fatal, CauseOutOfBounds
	case cell == CellWall:
		res.Outcome, res.Cause = Fatal, CauseWall
	case s.OccupiesAnyOtherThanHead(res.Target):
		res.Outcome, res.Cause = Fatal, CauseSelf
	case cell == CellApple:
		res.Outcome = Grew
	default:
		res.Outcome = Moved
	}
	return res
}
