package state

// GestureState tracks one surface's draw gesture. The zero value is Idle.
//
// last is only meaningful while active is true; Begin sets both from the
// same input so there is never an active gesture without a position.
type GestureState struct {
	active  bool
	last    Point
	hasLast bool
}

// Begin starts a gesture at p, replacing whatever was there before.
func (g *GestureState) Begin(p Point) {
	g.active = true
	g.last = p
	g.hasLast = true
}

// Update advances an active gesture to p and returns where the previous
// input was. ok is false when no gesture is active, and nothing changes.
func (g *GestureState) Update(p Point) (from Point, ok bool) {
	if !g.active {
		return Point{}, false
	}
	from = g.last
	g.last = p
	return from, true
}

// End returns to Idle.
func (g *GestureState) End() {
	g.active = false
	g.last = Point{}
	g.hasLast = false
}

func (g GestureState) Active() bool { return g.active }

// Last returns the last position of the active gesture.
func (g GestureState) Last() (Point, bool) {
	return g.last, g.hasLast
}
