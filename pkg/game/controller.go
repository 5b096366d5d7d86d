package game

// Controller holds the heading of the snake. Input only ever changes the pending
// direction; the committed one is what the opposite-direction filter checks against.
type Controller struct {
	committed Direction
	pending   Direction
	steering  bool
}

// NewController starts with both directions set to initial
func NewController(initial Direction, steering bool) *Controller {
	return &Controller{
		committed: initial,
		pending:   initial,
		steering:  steering,
	}
}

// Offer requests a new heading. It is refused when steering is off or when d is
// the reverse of the committed heading.
func (c *Controller) Offer(d Direction) bool {
	if !c.steering {
		return false
	}
	if d == c.committed.Opposite() {
		return false
	}
	c.pending = d
	return true
}

// Pending returns the direction the next move will use
func (c *Controller) Pending() Direction {
	return c.pending
}

// Current returns the committed direction
func (c *Controller) Current() Direction {
	return c.committed
}

// Commit makes the pending direction the committed one
func (c *Controller) Commit() {
	c.committed = c.pending
}
