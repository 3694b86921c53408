package planar

import (
	"github.com/golang/geo/r2"

	"github.com/go-clipper/geomclip"
)

// Polygon is a closed boundary of straight Segments in the plane.
type Polygon struct {
	points []Point
}

// NewPolygon returns a Polygon over points, or ErrTooFewVertices if fewer
// than three are given.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, geomclip.ErrTooFewVertices
	}
	return Polygon{points: append([]Point(nil), points...)}, nil
}

// Vertices returns the ordered vertices of the boundary.
func (p Polygon) Vertices() []geomclip.Vertex {
	out := make([]geomclip.Vertex, len(p.points))
	for i, v := range p.points {
		out[i] = v
	}
	return out
}

// Edges returns the ordered segments of the boundary, including the
// implicit closing segment from the last vertex back to the first.
func (p Polygon) Edges() []geomclip.Edge {
	n := len(p.points)
	out := make([]geomclip.Edge, n)
	for i := range p.points {
		out[i] = Segment{From: p.points[i], To: p.points[(i+1)%n]}
	}
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle that completely
// encloses the boundary.
func (p Polygon) BoundingBox() r2.Rect {
	if len(p.points) == 0 {
		return r2.EmptyRect()
	}
	points := make([]r2.Point, len(p.points))
	for i, v := range p.points {
		points[i] = r2.Point{X: v.X, Y: v.Y}
	}
	return r2.RectFromPoints(points...)
}

// Winding returns the number of times the boundary winds around point, via
// the standard upward-crossing rule with on-segment points credited as a
// single winding. Points beyond the boundary's bounding box cannot wind.
func (p Polygon) Winding(point geomclip.Vertex, tol geomclip.Tolerance) int {
	target := point.(Point)
	if !p.BoundingBox().ContainsPoint(r2.Point{X: target.X, Y: target.Y}) {
		return 0
	}
	n := len(p.points)
	wn := 0
	for i := 0; i < n; i++ {
		s := Segment{From: p.points[i], To: p.points[(i+1)%n]}
		if s.Contains(target, tol) {
			return 1
		}
		leftOf := determinant(s.From, s.To, target) > 0
		switch {
		case s.From.Y <= target.Y && s.To.Y > target.Y && leftOf:
			wn++
		case s.From.Y > target.Y && s.To.Y <= target.Y && !leftOf:
			wn--
		}
	}
	return wn
}

// IsClockwise reports whether the boundary is oriented clockwise, by
// testing the turn at its lowest, then rightmost, vertex.
func (p Polygon) IsClockwise() bool {
	n := len(p.points)
	if n == 0 {
		return false
	}
	min := 0
	for i := 1; i < n; i++ {
		if p.points[i].Y < p.points[min].Y || (p.points[i].Y == p.points[min].Y && p.points[i].X > p.points[min].X) {
			min = i
		}
	}
	prev := p.points[(min-1+n)%n]
	next := p.points[(min+1)%n]
	return determinant(prev, p.points[min], next) < 0
}

// Reversed returns a copy of the boundary with its vertex order reversed.
func (p Polygon) Reversed() geomclip.Polygon {
	reversed := make([]Point, len(p.points))
	for i, v := range p.points {
		reversed[len(p.points)-1-i] = v
	}
	return Polygon{points: reversed}
}

// Equal reports whether other describes the same cyclic boundary, up to
// rotation and direction.
func (p Polygon) Equal(other geomclip.Polygon) bool {
	o, ok := other.(Polygon)
	if !ok || len(p.points) != len(o.points) {
		return false
	}

	n := len(p.points)
	double := append(append([]Point{}, o.points...), o.points...)

	isRotation := func(seq []Point) bool {
		for padding := 0; padding < n; padding++ {
			if pointsEqual(seq[padding:padding+n], p.points) {
				return true
			}
		}
		return false
	}

	if isRotation(double) {
		return true
	}

	reversed := make([]Point, len(double))
	for i, v := range double {
		reversed[len(double)-1-i] = v
	}
	return isRotation(reversed)
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
