package vmath

// Point is a position in 3-space
// Structurally identical to Vector but kept as its own type so positions and
// displacements cannot be mixed by accident: Point-Point is a Vector,
// Point±Vector is a Point
type Point struct {
	X, Y, Z float64
}

// Add returns the point translated by v
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVector returns the point translated by -v
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}
