package spherical

import (
	"github.com/golang/geo/r3"

	"github.com/go-clipper/geomclip"
)

// Polygon is a closed boundary of great-circle Arcs on the unit sphere,
// together with a point known to lie outside it, used to cast winding-number
// rays.
type Polygon struct {
	points   []Point
	exterior Point
}

// NewPolygon returns a Polygon over points anchored by exterior, a point
// known to lie outside the boundary. It returns ErrTooFewVertices if fewer
// than three points are given, or ErrExteriorInsidePolygon if exterior winds
// around the boundary when judged from a point on the far side of the
// vertices' centroid, a reasonable anchor for any boundary that does not
// itself span a hemisphere, but still a heuristic rather than a proof, since
// the sphere has no point that is unconditionally outside every polygon. The
// check compares under a fixed relative tolerance of 1e-9.
func NewPolygon(points []Point, exterior Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, geomclip.ErrTooFewVertices
	}
	stored := append([]Point(nil), points...)
	check := geomclip.Tolerance{Relative: geomclip.NewPositive(1e-9)}
	if windingFrom(stored, farSide(stored), exterior, check) != 0 {
		return Polygon{}, geomclip.ErrExteriorInsidePolygon
	}
	return Polygon{points: stored, exterior: exterior}, nil
}

// farSide returns a point roughly opposite the centroid of points, used as
// an independent reference for validating a caller-supplied exterior anchor.
func farSide(points []Point) Point {
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p.vector())
	}
	if sum.Norm() == 0 {
		return NewPoint(0, 0)
	}
	return fromVector(sum.Mul(-1).Normalize())
}

// windingFrom counts the signed crossings of a ray from ref to target against
// the boundary formed by points, independent of any Polygon's own stored
// exterior anchor.
func windingFrom(points []Point, ref, target Point, tol geomclip.Tolerance) int {
	ray := Arc{From: ref, To: target}
	targetVector := target.vector()

	n := len(points)
	wn := 0
	for i := 0; i < n; i++ {
		arc := Arc{From: points[i], To: points[(i+1)%n]}
		if ray.Intersection(arc, tol).Kind == geomclip.NoCrossing {
			continue
		}
		if arc.normal().Dot(targetVector) > 0 {
			wn++
		} else {
			wn--
		}
	}
	return wn
}

// Vertices returns the ordered vertices of the boundary.
func (p Polygon) Vertices() []geomclip.Vertex {
	out := make([]geomclip.Vertex, len(p.points))
	for i, v := range p.points {
		out[i] = v
	}
	return out
}

// Edges returns the ordered arcs of the boundary, including the implicit
// closing arc from the last vertex back to the first.
func (p Polygon) Edges() []geomclip.Edge {
	n := len(p.points)
	out := make([]geomclip.Edge, n)
	for i := range p.points {
		out[i] = Arc{From: p.points[i], To: p.points[(i+1)%n]}
	}
	return out
}

// Winding returns the number of times the boundary winds around point, by
// casting an arc from the exterior anchor to point and counting the signed
// crossings with the boundary.
func (p Polygon) Winding(point geomclip.Vertex, tol geomclip.Tolerance) int {
	return windingFrom(p.points, p.exterior, point.(Point), tol)
}

// IsClockwise reports whether the boundary is oriented clockwise, by
// testing the turn at the vertex with the lowest inclination, then the
// greatest azimuth.
func (p Polygon) IsClockwise() bool {
	n := len(p.points)
	if n == 0 {
		return false
	}
	min := 0
	for i := 1; i < n; i++ {
		if p.points[i].Inclination < p.points[min].Inclination ||
			(p.points[i].Inclination == p.points[min].Inclination && p.points[i].Azimuth > p.points[min].Azimuth) {
			min = i
		}
	}
	before := p.points[(min-1+n)%n].vector()
	after := p.points[(min+1)%n].vector()
	minVector := p.points[min].vector()
	return before.Dot(minVector.Cross(after)) < 0
}

// Reversed returns a copy of the boundary with its vertex order reversed.
func (p Polygon) Reversed() geomclip.Polygon {
	reversed := make([]Point, len(p.points))
	for i, v := range p.points {
		reversed[len(p.points)-1-i] = v
	}
	return Polygon{points: reversed, exterior: p.exterior}
}

// Equal reports whether other describes the same cyclic boundary, up to
// rotation and direction. The exterior anchor is not compared: it is
// bookkeeping, not part of the boundary's identity.
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
