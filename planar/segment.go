package planar

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/go-clipper/geomclip"
)

// Segment is the straight edge between two consecutive vertices of a
// Polygon.
type Segment struct {
	From, To Point
}

// direction returns the vector from the segment's start to its end.
func (s Segment) direction() r2.Point {
	return s.To.vector().Sub(s.From.vector())
}

// Midpoint returns the point halfway between the two endpoints.
func (s Segment) Midpoint() geomclip.Vertex {
	return fromVector(s.From.vector().Add(s.To.vector()).Mul(0.5))
}

func (s Segment) length() float64 {
	return s.From.Distance(s.To)
}

// Contains reports whether point lies on the segment within tol, by
// comparing the sum of the distances to the endpoints against the segment's
// own length.
func (s Segment) Contains(point geomclip.Vertex, tol geomclip.Tolerance) bool {
	p := point.(Point)
	total := s.From.Distance(p) + s.To.Distance(p)
	return geomclip.IsClose(total, s.length(), tol)
}

// Intersection returns the crossing points between s and other, following
// the standard 2x2 determinant construction, falling back to a dominant-axis
// projection to find the overlap of two collinear segments.
func (s Segment) Intersection(other geomclip.Edge, tol geomclip.Tolerance) geomclip.Crossing {
	o := other.(Segment)

	det := s.direction().Cross(o.direction())
	if det == 0 {
		if s.direction().Cross(s.From.vector().Sub(o.From.vector())) == 0 {
			return s.collinearCommonPoints(o)
		}
		return geomclip.Crossing{}
	}

	offset := o.From.vector().Sub(s.From.vector())
	t := offset.Cross(o.direction()) / det
	if t < 0 || t > 1 {
		return geomclip.Crossing{}
	}

	u := offset.Cross(s.direction()) / det
	if u < 0 || u > 1 {
		return geomclip.Crossing{}
	}

	point := fromVector(s.From.vector().Add(s.direction().Mul(t)))
	return geomclip.Crossing{Kind: geomclip.OneCrossing, First: point}
}

// collinearCommonPoints handles the case where s and other lie on the same
// infinite line, by projecting both onto whichever axis s is more nearly
// parallel to and intersecting the resulting intervals.
func (s Segment) collinearCommonPoints(other Segment) geomclip.Crossing {
	direction := s.direction()
	projectOnX := math.Abs(direction.X) > math.Abs(direction.Y)
	project := func(p Point) float64 {
		if projectOnX {
			return p.X
		}
		return p.Y
	}
	span := func(seg Segment) r1.Interval {
		from, to := project(seg.From), project(seg.To)
		if from > to {
			from, to = to, from
		}
		return r1.Interval{Lo: from, Hi: to}
	}

	common := span(s).Intersection(span(other))
	if common.IsEmpty() {
		return geomclip.Crossing{}
	}

	unproject := func(scalar float64) (Point, bool) {
		u := (scalar - project(s.From)) / (project(s.To) - project(s.From))
		if u < 0 || u > 1 {
			return Point{}, false
		}
		return fromVector(s.From.vector().Add(direction.Mul(u))), true
	}

	if common.Length() == 0 {
		point, ok := unproject(common.Lo)
		if !ok {
			return geomclip.Crossing{}
		}
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: point}
	}

	start, startOK := unproject(common.Lo)
	end, endOK := unproject(common.Hi)
	switch {
	case startOK && endOK:
		return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: start, Second: end}
	case startOK:
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: start}
	case endOK:
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: end}
	default:
		return geomclip.Crossing{}
	}
}
