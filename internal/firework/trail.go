package firework

// TrailLength is the number of recent positions a trail keeps.
const TrailLength = 10

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Trail is a bounded history of positions, oldest first.
// Pushing past TrailLength evicts the oldest entry.
type Trail struct {
	points [TrailLength]Point
	n      int
}

func (t *Trail) Push(p Point) {
	if t.n == TrailLength {
		copy(t.points[:], t.points[1:])
		t.n--
	}
	t.points[t.n] = p
	t.n++
}

func (t *Trail) Len() int { return t.n }

// Points returns the stored positions, oldest first. The slice aliases the
// trail and is only valid until the next Push.
func (t *Trail) Points() []Point {
	return t.points[:t.n]
}
