package state

// Point is a position relative to a surface's top-left corner.
type Point struct{ X, Y float32 }

// Sub returns p translated so that origin becomes (0, 0).
func (p Point) Sub(origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// Segment is a single straight stroke piece. It only lives for one render call.
type Segment struct {
	Surface string
	Seq     uint64
	From    Point
	To      Point
	Color   string
}
